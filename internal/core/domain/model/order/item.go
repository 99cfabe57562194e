package order

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Item is an order line owned exclusively by one Order. The unit price is a
// snapshot of the product price taken at order creation, insulating the
// order from future price changes. The product reference is likewise only a
// snapshot key, never a live association.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money

	isConstructed bool
}

// NewItem creates an order line with a product price snapshot.
// Quantity must be a positive integer and the unit price must be positive.
// The line subtotal is computed as unitPrice times quantity, rounded to two
// fractional digits as the stored value.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.IsPositive() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}

	return Item{
		id:            id,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      unitPrice.MulInt(quantity).Round2(),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
// The stored subtotal is trusted; NewItem recomputes it at creation time.
func RestoreItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice, subtotal kernel.Money) (Item, error) {
	item, err := NewItem(id, productID, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}
	item.subtotal = subtotal
	return item, nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the snapshot reference to the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the product price snapshot taken at order creation.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}

// Validate ensures the item was created through NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("Item must be created via NewItem")
	}
	return nil
}
