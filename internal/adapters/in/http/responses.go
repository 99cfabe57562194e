package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
)

// OrderItemJSON is one order line on the wire.
type OrderItemJSON struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// OrderJSON is the wire shape of an order. Monetary values are serialized
// as fixed-point decimal strings to keep them exact.
type OrderJSON struct {
	ID              string          `json:"id"`
	ConsumerID      string          `json:"consumerId"`
	RestaurantID    string          `json:"restaurantId"`
	DeliveryAddress string          `json:"deliveryAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	Status          string          `json:"status"`
	Subtotal        string          `json:"subtotal"`
	DeliveryTax     string          `json:"deliveryTax"`
	Total           string          `json:"total"`
	Items           []OrderItemJSON `json:"items"`
}

func newOrderJSON(response queries.OrderResponse) OrderJSON {
	items := make([]OrderItemJSON, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItemJSON{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		})
	}

	return OrderJSON{
		ID:              response.ID.String(),
		ConsumerID:      response.ConsumerID.String(),
		RestaurantID:    response.RestaurantID.String(),
		DeliveryAddress: response.DeliveryAddress,
		OrderDate:       response.OrderDate,
		Status:          response.Status,
		Subtotal:        response.Subtotal.String(),
		DeliveryTax:     response.DeliveryTax.String(),
		Total:           response.Total.String(),
		Items:           items,
	}
}

func newOrderListJSON(responses []queries.OrderResponse) []OrderJSON {
	orders := make([]OrderJSON, 0, len(responses))
	for _, response := range responses {
		orders = append(orders, newOrderJSON(response))
	}
	return orders
}

// ProductJSON is one catalog product on the wire.
type ProductJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
}

func newProductListJSON(responses []queries.ProductResponse) []ProductJSON {
	products := make([]ProductJSON, 0, len(responses))
	for _, response := range responses {
		products = append(products, ProductJSON{
			ID:          response.ID.String(),
			Name:        response.Name,
			Description: response.Description,
			Category:    response.Category,
			Price:       response.Price.String(),
			Available:   response.Available,
		})
	}
	return products
}
