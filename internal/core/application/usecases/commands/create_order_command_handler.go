package commands

import (
	"context"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement:
// catalog resolution, authorization, pricing and atomic persistence of the
// order with its items.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	publisher  ports.EventPublisher
	policy     services.AccessPolicy
	pricing    services.PricingService
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The publisher receives the order's creation event after commit and may be
// nil when no observers are wired.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory,
	publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
		pricing:    services.NewPricingService(),
	}
}

// Handle processes the order placement command.
//
// Consumer and restaurant are resolved first; a missing reference aborts the
// whole operation before anything is priced or written. The order and all of
// its items are persisted in a single transaction, so partial orders are
// never observable.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderingConsumer, err := uow.ConsumerRepository().Get(ctx, cmd.ConsumerID())
	if err != nil {
		return err
	}
	if err = h.policy.CanAccessConsumer(cmd.RequestedBy(), orderingConsumer.ID()); err != nil {
		return err
	}
	if !orderingConsumer.IsActive() {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"consumer %s is deactivated", orderingConsumer.ID()))
	}

	selectedRestaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !selectedRestaurant.IsActive() {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"restaurant %s is not accepting orders", selectedRestaurant.ID()))
	}

	lines := make([]services.Line, 0, len(cmd.Lines()))
	for _, requested := range cmd.Lines() {
		product, prodErr := uow.RestaurantRepository().GetProduct(ctx, requested.ProductID)
		if prodErr != nil {
			return prodErr
		}
		lines = append(lines, services.Line{Product: product, Quantity: requested.Quantity})
	}

	quote, err := h.pricing.Quote(selectedRestaurant, lines)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		orderingConsumer.ID(),
		selectedRestaurant.ID(),
		orderingConsumer.Address(),
		time.Now(),
		quote.Items,
		quote.DeliveryTax,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, uow)
	return nil
}
