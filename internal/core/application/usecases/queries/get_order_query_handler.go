package queries

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// GetOrderQueryHandler reads a single order, gated on the caller's role and
// ownership: the order's consumer, the order's restaurant, or an admin.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = h.policy.CanAccessOrder(query.RequestedBy(), aggregate); err != nil {
		return OrderResponse{}, err
	}

	return newOrderResponse(aggregate), nil
}
