// Package ports defines repository and messaging interfaces for the order
// management domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using
	// optimistic concurrency: the write only succeeds if the stored
	// version still matches the version the aggregate was loaded with.
	// Returns errs.ErrVersionConflict when another writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items, status and version.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByConsumer retrieves all orders placed by the given consumer,
	// newest first.
	GetByConsumer(ctx context.Context, consumerID kernel.UUID) ([]*order.Order, error)

	// GetByRestaurant retrieves all orders placed against the given
	// restaurant, newest first.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetAllPendingBefore retrieves orders still in PENDING status whose
	// order date is older than the cutoff. Used by the stale-order
	// cancellation job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
