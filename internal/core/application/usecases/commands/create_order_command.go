package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was not
// created through NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested catalog item with its quantity.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order against a
// restaurant's catalog on behalf of a consumer. The delivery address is not
// part of the command: it is snapshotted from the consumer record when the
// order is built.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	requestedBy  actor.Actor
	consumerID   kernel.UUID
	restaurantID kernel.UUID
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Quantities must be positive; zero or negative quantities are rejected here,
// before any pricing takes place.
func NewCreateOrderCommand(orderID kernel.UUID, requestedBy actor.Actor,
	consumerID, restaurantID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
		cmd.setConsumerID(consumerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the authenticated principal placing the order.
func (c CreateOrderCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// ConsumerID returns the consumer the order is placed for.
func (c CreateOrderCommand) ConsumerID() kernel.UUID {
	return c.consumerID
}

// RestaurantID returns the restaurant the order is placed against.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested catalog items in request order.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(err)
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *CreateOrderCommand) setConsumerID(consumerID kernel.UUID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}

	c.consumerID = consumerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	copied := make([]OrderLine, len(lines))
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
		copied[i] = line
	}

	c.lines = copied
	return nil
}
