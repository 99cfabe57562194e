package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates and their product catalogs.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	// Returns errs.ErrConflict when the name is already taken.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// AddProduct persists a new catalog product.
	AddProduct(ctx context.Context, product *restaurant.Product) error

	// UpdateProduct persists changes to an existing catalog product.
	UpdateProduct(ctx context.Context, product *restaurant.Product) error

	// GetProduct retrieves a single catalog product by its identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*restaurant.Product, error)

	// GetProducts retrieves the full catalog of the given restaurant.
	GetProducts(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Product, error)
}
