package queries

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ListConsumerOrdersQueryHandler lists a consumer's orders, gated on consumer
// ownership or the ADMIN role.
type ListConsumerOrdersQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewListConsumerOrdersQueryHandler creates a handler for consumer order history.
func NewListConsumerOrdersQueryHandler(orders ports.OrderRepository) ListConsumerOrdersQueryHandler {
	return ListConsumerOrdersQueryHandler{
		orders: orders,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query. Authorization runs before any data is read.
func (h ListConsumerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListConsumerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanAccessConsumer(query.RequestedBy(), query.ConsumerID()); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetByConsumer(ctx, query.ConsumerID())
	if err != nil {
		return nil, err
	}

	return newOrderResponses(aggregates), nil
}
