package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// EventPublisher delivers domain events to downstream observers after a
// transaction commits. Publishing is fire-and-forget: implementations must
// never fail the business operation, only record delivery problems.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent)
}
