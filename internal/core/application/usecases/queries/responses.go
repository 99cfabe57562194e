// Package queries contains read-only operations for the CQRS read side.
// Query handlers never mutate state; they authorize the caller, read
// through the repository ports, and shape aggregates into flat responses.
package queries

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// OrderResponse is the read-side shape of an order.
type OrderResponse struct {
	ID              kernel.UUID
	ConsumerID      kernel.UUID
	RestaurantID    kernel.UUID
	DeliveryAddress string
	OrderDate       time.Time
	Status          string
	Subtotal        kernel.Money
	DeliveryTax     kernel.Money
	Total           kernel.Money
	Items           []OrderItemResponse
}

func newOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:              aggregate.ID(),
		ConsumerID:      aggregate.ConsumerID(),
		RestaurantID:    aggregate.RestaurantID(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		OrderDate:       aggregate.OrderDate(),
		Status:          aggregate.Status().String(),
		Subtotal:        aggregate.Subtotal(),
		DeliveryTax:     aggregate.DeliveryTax(),
		Total:           aggregate.Total(),
		Items:           items,
	}
}

func newOrderResponses(aggregates []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, newOrderResponse(aggregate))
	}
	return responses
}
