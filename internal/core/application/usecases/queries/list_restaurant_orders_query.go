package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrListRestaurantOrdersQueryIsNotConstructed is returned when the query
// was not created through NewListRestaurantOrdersQuery.
var ErrListRestaurantOrdersQueryIsNotConstructed = errors.New(
	"ListRestaurantOrdersQuery must be created via NewListRestaurantOrdersQuery constructor",
)

// ListRestaurantOrdersQuery retrieves the orders placed against one restaurant.
type ListRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	requestedBy  actor.Actor

	guard guard.ConstructorGuard
}

// NewListRestaurantOrdersQuery creates a query listing a restaurant's orders.
func NewListRestaurantOrdersQuery(restaurantID kernel.UUID, requestedBy actor.Actor) (ListRestaurantOrdersQuery, error) {
	q := ListRestaurantOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := restaurantID.Validate(); err != nil {
		return ListRestaurantOrdersQuery{}, err
	}
	if err := requestedBy.Validate(); err != nil {
		return ListRestaurantOrdersQuery{}, errs.NewUnauthorizedErrorWithCause(err)
	}

	q.restaurantID = restaurantID
	q.requestedBy = requestedBy
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q ListRestaurantOrdersQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// RequestedBy returns the authenticated principal listing the orders.
func (q ListRestaurantOrdersQuery) RequestedBy() actor.Actor { return q.requestedBy }
