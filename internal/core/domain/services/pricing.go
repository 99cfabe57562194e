package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"
)

// Line pairs a resolved catalog product with the requested quantity.
// Quantity validation happens when the order item is built, so a
// non-positive quantity never reaches the arithmetic below.
type Line struct {
	Product  *restaurant.Product
	Quantity int
}

// Quote is the priced result for a prospective order. All amounts carry
// fixed-point decimal semantics; Subtotal and Total are the values the
// order will store, rounded to two fractional digits.
type Quote struct {
	Items       []order.Item
	Subtotal    kernel.Money
	DeliveryTax kernel.Money
	Total       kernel.Money
}

// PricingService prices order lines against a restaurant's catalog.
//
// Business rules:
//   - Every product must belong to the selected restaurant. A single order
//     must never mix products from different restaurants; the first
//     offending product fails the whole quote.
//   - Unavailable products cannot be ordered.
//   - Unit prices are snapshots of the current catalog price.
//   - The delivery tax is the restaurant's base tax; zone surcharges are
//     applied by DeliveryZoneTable when a postal code is quoted.
type PricingService struct{}

// NewPricingService creates a PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// Quote prices the given lines for the given restaurant.
// Returns a BusinessRuleViolationError naming the offending product when a
// line references a product of another restaurant or an unavailable one.
func (PricingService) Quote(rest *restaurant.Restaurant, lines []Line) (Quote, error) {
	if err := rest.Validate(); err != nil {
		return Quote{}, err
	}
	if len(lines) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	subtotal := kernel.ZeroMoney()

	for _, line := range lines {
		product := line.Product
		if err := product.Validate(); err != nil {
			return Quote{}, err
		}

		if !product.BelongsTo(rest.ID()) {
			return Quote{}, errs.NewBusinessRuleViolationError(fmt.Sprintf(
				"product %s does not belong to the selected restaurant", product.ID()))
		}
		if !product.IsAvailable() {
			return Quote{}, errs.NewBusinessRuleViolationError(fmt.Sprintf(
				"product %s is not available", product.ID()))
		}

		item, err := order.NewItem(kernel.NewUUID(), product.ID(), line.Quantity, product.Price())
		if err != nil {
			return Quote{}, err
		}

		items = append(items, item)
		subtotal = subtotal.Add(item.Subtotal())
	}

	deliveryTax := rest.DeliveryTax().Round2()
	roundedSubtotal := subtotal.Round2()

	return Quote{
		Items:       items,
		Subtotal:    roundedSubtotal,
		DeliveryTax: deliveryTax,
		Total:       roundedSubtotal.Add(deliveryTax),
	}, nil
}
