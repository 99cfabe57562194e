package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrAddProductCommandIsNotConstructed is returned when the command was not
// created through NewAddProductCommand.
var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand represents a request to add a product to a restaurant's
// catalog. Catalog mutation is gated on restaurant ownership.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	restaurantID kernel.UUID
	requestedBy  actor.Actor
	name         string
	description  string
	category     string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a catalog product.
func NewAddProductCommand(productID, restaurantID kernel.UUID, requestedBy actor.Actor,
	name, description, category string, price kernel.Money) (AddProductCommand, error) {
	cmd := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setRestaurantID(restaurantID),
		cmd.setRequestedBy(requestedBy),
		cmd.setPrice(price),
	); err != nil {
		return AddProductCommand{}, err
	}

	cmd.name = name
	cmd.description = description
	cmd.category = category

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the identifier the new product will carry.
func (c AddProductCommand) ProductID() kernel.UUID { return c.productID }

// RestaurantID returns the catalog's owning restaurant.
func (c AddProductCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// RequestedBy returns the authenticated principal mutating the catalog.
func (c AddProductCommand) RequestedBy() actor.Actor { return c.requestedBy }

// Name returns the product's display name.
func (c AddProductCommand) Name() string { return c.name }

// Description returns the product's description, possibly empty.
func (c AddProductCommand) Description() string { return c.description }

// Category returns the product's menu category, possibly empty.
func (c AddProductCommand) Category() string { return c.category }

// Price returns the product's unit price.
func (c AddProductCommand) Price() kernel.Money { return c.price }

func (c *AddProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddProductCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(err)
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *AddProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
