package queries

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ListRestaurantOrdersQueryHandler lists the orders placed against a
// restaurant, gated on restaurant ownership or the ADMIN role.
type ListRestaurantOrdersQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewListRestaurantOrdersQueryHandler creates a handler for restaurant order listings.
func NewListRestaurantOrdersQueryHandler(orders ports.OrderRepository) ListRestaurantOrdersQueryHandler {
	return ListRestaurantOrdersQueryHandler{
		orders: orders,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query. Authorization runs before any data is read.
func (h ListRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanViewRestaurantOrders(query.RequestedBy(), query.RestaurantID()); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	return newOrderResponses(aggregates), nil
}
