package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when the query was not
// created through NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order for an authorized caller.
type GetOrderQuery struct {
	orderID     kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID kernel.UUID, requestedBy actor.Actor) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := requestedBy.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewUnauthorizedErrorWithCause(err)
	}

	q.orderID = orderID
	q.requestedBy = requestedBy
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// RequestedBy returns the authenticated principal reading the order.
func (q GetOrderQuery) RequestedBy() actor.Actor { return q.requestedBy }
