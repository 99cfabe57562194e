package order

import (
	"foodorder/internal/core/domain/model/kernel"
)

// DomainEvent is a notification recorded by the aggregate during a state
// change. Events are drained by the application layer and published to
// audit observers strictly after a successful commit; publishing is
// fire-and-forget and can never affect the transaction outcome.
type DomainEvent interface {
	EventName() string
}

// CreatedEvent is recorded when a new order is built.
type CreatedEvent struct {
	OrderID      kernel.UUID
	ConsumerID   kernel.UUID
	RestaurantID kernel.UUID
	Total        kernel.Money
}

// EventName identifies the event for audit logging.
func (CreatedEvent) EventName() string { return "order.created" }

// StatusChangedEvent is recorded on every successful status transition,
// including cancellation.
type StatusChangedEvent struct {
	OrderID kernel.UUID
	From    Status
	To      Status
}

// EventName identifies the event for audit logging.
func (StatusChangedEvent) EventName() string { return "order.status_changed" }
