package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

// ErrListProductsQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor")

// ListProductsQuery requests a restaurant's catalog. The catalog is public:
// no actor is required to browse it.
type ListProductsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a catalog listing query.
func NewListProductsQuery(restaurantID kernel.UUID) (ListProductsQuery, error) {
	q := ListProductsQuery{guard: guard.NewConstructorGuard()}

	if err := restaurantID.Validate(); err != nil {
		return ListProductsQuery{}, err
	}
	q.restaurantID = restaurantID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose catalog is requested.
func (q ListProductsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
