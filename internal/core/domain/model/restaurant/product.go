package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry owned by exactly one restaurant for its whole
// lifetime. The owning restaurant never changes; orders snapshot the price
// at creation time.
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	category     string
	available    bool

	isConstructed bool
}

// NewProduct creates an available product with a strictly positive price.
func NewProduct(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
) (*Product, error) {
	p := &Product{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRestaurantID(restaurantID),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.category = category
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
	available bool,
) (*Product, error) {
	p, err := NewProduct(id, restaurantID, name, description, price, category)
	if err != nil {
		return nil, err
	}
	p.available = available
	return p, nil
}

// Validate ensures the Product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// RestaurantID returns the owning restaurant. Fixed for life.
func (p *Product) RestaurantID() kernel.UUID { return p.restaurantID }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Description returns the product description, possibly empty.
func (p *Product) Description() string { return p.description }

// Price returns the current catalog price. Orders snapshot it.
func (p *Product) Price() kernel.Money { return p.price }

// Category returns the product category, possibly empty.
func (p *Product) Category() string { return p.category }

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool { return p.available }

// MarkUnavailable takes the product off the menu without deleting it.
func (p *Product) MarkUnavailable() { p.available = false }

// MarkAvailable puts the product back on the menu.
func (p *Product) MarkAvailable() { p.available = true }

// ChangePrice updates the catalog price for future orders. Historical
// orders keep their unit price snapshots.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// BelongsTo reports whether this product is owned by the given restaurant.
func (p *Product) BelongsTo(restaurantID kernel.UUID) bool {
	return p.restaurantID.IsEqual(restaurantID)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.restaurantID = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}
