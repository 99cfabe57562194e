package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrUpdateOrderStatusCommandIsNotConstructed is returned when the command
// was not created through NewUpdateOrderStatusCommand.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Whether the move is legal is decided by the order itself
// against its transition table; this command only carries the request.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	status      order.Status
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status,
	requestedBy actor.Actor) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// NewCancelOrderCommand creates a command canceling an order. Cancellation
// is a plain status update to CANCELED validated through the same transition
// table, so a delivered order can never be canceled.
func NewCancelOrderCommand(orderID kernel.UUID, requestedBy actor.Actor) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(orderID, order.Canceled, requestedBy)
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// RequestedBy returns the authenticated principal requesting the change.
func (c UpdateOrderStatusCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(err)
	}

	c.requestedBy = requestedBy
	return nil
}
