package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrCreateRestaurantCommandIsNotConstructed is returned when the command
// was not created through NewCreateRestaurantCommand.
var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to onboard a new restaurant.
// Restaurant creation is an administrative operation regardless of ownership.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	requestedBy  actor.Actor
	name         string
	category     string
	address      string
	phone        string
	deliveryTax  kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to onboard a restaurant.
func NewCreateRestaurantCommand(restaurantID kernel.UUID, requestedBy actor.Actor,
	name, category, address, phone string, deliveryTax kernel.Money) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setRequestedBy(requestedBy),
		cmd.setDeliveryTax(deliveryTax),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	cmd.name = name
	cmd.category = category
	cmd.address = address
	cmd.phone = phone

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier the new restaurant will carry.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// RequestedBy returns the authenticated principal onboarding the restaurant.
func (c CreateRestaurantCommand) RequestedBy() actor.Actor { return c.requestedBy }

// Name returns the restaurant's unique display name.
func (c CreateRestaurantCommand) Name() string { return c.name }

// Category returns the cuisine category, possibly empty.
func (c CreateRestaurantCommand) Category() string { return c.category }

// Address returns the restaurant's street address.
func (c CreateRestaurantCommand) Address() string { return c.address }

// Phone returns the restaurant's contact phone, possibly empty.
func (c CreateRestaurantCommand) Phone() string { return c.phone }

// DeliveryTax returns the restaurant's base delivery tax.
func (c CreateRestaurantCommand) DeliveryTax() kernel.Money { return c.deliveryTax }

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(err)
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *CreateRestaurantCommand) setDeliveryTax(deliveryTax kernel.Money) error {
	if err := deliveryTax.Validate(); err != nil {
		return err
	}

	c.deliveryTax = deliveryTax
	return nil
}
