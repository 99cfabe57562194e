// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AggregateTracker collects aggregates modified within the transaction
	// so their domain events can be published after a successful commit.
	AggregateTracker interface {
		TrackAggregate(id kernel.UUID, aggregate any)
		TrackedAggregates() []any
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ConsumerRepoFactory provides access to the consumer repository within a transaction.
	ConsumerRepoFactory interface {
		ConsumerRepository() ports.ConsumerRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations such as
	// status updates and cancellations.
	OrderUoW interface {
		TxManager
		AggregateTracker
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// consumer, restaurant and catalog data before writing the order.
	CreateOrderUoW interface {
		TxManager
		AggregateTracker
		OrderRepoFactory
		ConsumerRepoFactory
		RestaurantRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ConsumerUoW manages transactions for consumer-only operations.
	ConsumerUoW interface {
		TxManager
		ConsumerRepoFactory
	}

	// ConsumerUoWFactory creates new consumer unit of work instances.
	ConsumerUoWFactory interface {
		Create() ConsumerUoW
	}

	// RestaurantUoW manages transactions for restaurant and catalog operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// UserUoW manages transactions for account registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
