package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ConsumerRepository returns a ConsumerRepository bound to the current transaction.
	ConsumerRepository() ConsumerRepository

	// RestaurantRepository returns a RestaurantRepository bound to the current transaction.
	RestaurantRepository() RestaurantRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// TrackAggregate registers an aggregate modified within the transaction
	// so its domain events can be drained after a successful commit.
	TrackAggregate(id kernel.UUID, aggregate any)

	// TrackedAggregates returns every aggregate registered via TrackAggregate,
	// in registration order.
	TrackedAggregates() []any
}
