package ports

import (
	"context"

	"foodorder/internal/core/domain/model/consumer"
	"foodorder/internal/core/domain/model/kernel"
)

// ConsumerRepository defines the persistence contract for consumer aggregates.
type ConsumerRepository interface {
	// Add persists a new consumer aggregate to storage.
	// Returns errs.ErrConflict when the email is already registered.
	Add(ctx context.Context, aggregate *consumer.Consumer) error

	// Update persists changes to an existing consumer aggregate.
	Update(ctx context.Context, aggregate *consumer.Consumer) error

	// Get retrieves a consumer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*consumer.Consumer, error)
}
