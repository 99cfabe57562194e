package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrListConsumerOrdersQueryIsNotConstructed is returned when the query was
// not created through NewListConsumerOrdersQuery.
var ErrListConsumerOrdersQueryIsNotConstructed = errors.New(
	"ListConsumerOrdersQuery must be created via NewListConsumerOrdersQuery constructor",
)

// ListConsumerOrdersQuery retrieves the order history of one consumer.
type ListConsumerOrdersQuery struct {
	consumerID  kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewListConsumerOrdersQuery creates a query listing a consumer's orders.
func NewListConsumerOrdersQuery(consumerID kernel.UUID, requestedBy actor.Actor) (ListConsumerOrdersQuery, error) {
	q := ListConsumerOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := consumerID.Validate(); err != nil {
		return ListConsumerOrdersQuery{}, err
	}
	if err := requestedBy.Validate(); err != nil {
		return ListConsumerOrdersQuery{}, errs.NewUnauthorizedErrorWithCause(err)
	}

	q.consumerID = consumerID
	q.requestedBy = requestedBy
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListConsumerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListConsumerOrdersQueryIsNotConstructed)
}

// ConsumerID returns the consumer whose orders are listed.
func (q ListConsumerOrdersQuery) ConsumerID() kernel.UUID { return q.consumerID }

// RequestedBy returns the authenticated principal listing the orders.
func (q ListConsumerOrdersQuery) RequestedBy() actor.Actor { return q.requestedBy }
