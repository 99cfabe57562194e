package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	Events() []order.DomainEvent
	ClearEvents()
}

// publishEvents drains the domain events of every aggregate tracked during
// the unit of work and hands them to the publisher. Called only after a
// successful commit; publishing can never fail the business operation.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, tracker AggregateTracker) {
	if publisher == nil {
		return
	}
	for _, aggregate := range tracker.TrackedAggregates() {
		src, ok := aggregate.(eventSource)
		if !ok {
			continue
		}
		for _, event := range src.Events() {
			publisher.Publish(ctx, event)
		}
		src.ClearEvents()
	}
}
