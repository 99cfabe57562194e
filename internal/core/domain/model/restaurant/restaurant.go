// Package restaurant provides the Restaurant aggregate and its Product
// entities. Every product belongs to exactly one restaurant for its whole
// lifetime; orders verify that rule before pricing a single line.
package restaurant

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the aggregate root for a food seller. The deliveryTax is
// the base monetary value of a delivery; zone surcharges are added on top
// of it by the delivery tax calculator.
type Restaurant struct {
	id          kernel.UUID
	name        string
	category    string
	address     string
	phone       string
	deliveryTax kernel.Money
	active      bool

	isConstructed bool
}

// NewRestaurant creates an active restaurant. Name and address are
// required and the base delivery tax must not be negative. Name uniqueness
// is enforced by the repository.
func NewRestaurant(id kernel.UUID, name, category, address, phone string, deliveryTax kernel.Money) (*Restaurant, error) {
	r := &Restaurant{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
		r.setDeliveryTax(deliveryTax),
	); err != nil {
		return nil, err
	}

	r.category = category
	r.phone = phone
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	name, category, address, phone string,
	deliveryTax kernel.Money,
	active bool,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, category, address, phone, deliveryTax)
	if err != nil {
		return nil, err
	}
	r.active = active
	return r, nil
}

// Validate ensures the Restaurant was created through a factory method.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID { return r.id }

// Name returns the restaurant's unique display name.
func (r *Restaurant) Name() string { return r.name }

// Category returns the cuisine category, possibly empty.
func (r *Restaurant) Category() string { return r.category }

// Address returns the restaurant's address.
func (r *Restaurant) Address() string { return r.address }

// Phone returns the restaurant's contact phone, possibly empty.
func (r *Restaurant) Phone() string { return r.phone }

// DeliveryTax returns the base delivery tax before zone surcharges.
func (r *Restaurant) DeliveryTax() kernel.Money { return r.deliveryTax }

// IsActive reports whether the restaurant accepts orders.
func (r *Restaurant) IsActive() bool { return r.active }

// Disable soft-deletes the restaurant.
func (r *Restaurant) Disable() { r.active = false }

// Enable re-activates a disabled restaurant.
func (r *Restaurant) Enable() { r.active = true }

// ChangeDeliveryTax updates the base delivery tax for future orders.
// Existing orders keep their snapshotted tax.
func (r *Restaurant) ChangeDeliveryTax(tax kernel.Money) error {
	return r.setDeliveryTax(tax)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setDeliveryTax(tax kernel.Money) error {
	if err := tax.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryTax", err)
	}
	r.deliveryTax = tax
	return nil
}
