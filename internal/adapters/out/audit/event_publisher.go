// Package audit records domain events on the structured log. It is the
// outbound observer side of the order lifecycle: every event an aggregate
// records during a committed transaction ends up here as an audit entry.
package audit

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// ZapEventPublisher writes domain events to a zap logger. Publishing is
// fire-and-forget: an event that cannot be enriched is still logged with
// whatever fields are known, and the business operation is never failed.
type ZapEventPublisher struct {
	logger *zap.Logger
}

// NewZapEventPublisher creates an audit publisher on top of the given logger.
func NewZapEventPublisher(logger *zap.Logger) *ZapEventPublisher {
	return &ZapEventPublisher{logger: logger}
}

// Publish records a single domain event as a structured audit entry.
func (p *ZapEventPublisher) Publish(_ context.Context, event order.DomainEvent) {
	switch e := event.(type) {
	case order.CreatedEvent:
		p.logger.Info("order created",
			zap.String("event", e.EventName()),
			zap.String("orderId", e.OrderID.String()),
			zap.String("consumerId", e.ConsumerID.String()),
			zap.String("restaurantId", e.RestaurantID.String()),
			zap.String("total", e.Total.String()),
		)
	case order.StatusChangedEvent:
		p.logger.Info("order status changed",
			zap.String("event", e.EventName()),
			zap.String("orderId", e.OrderID.String()),
			zap.String("from", e.From.String()),
			zap.String("to", e.To.String()),
		)
	default:
		p.logger.Info("domain event",
			zap.String("event", event.EventName()),
		)
	}
}
