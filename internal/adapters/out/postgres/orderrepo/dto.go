// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary fields are stored as fixed-point numerics; the version column
// backs optimistic concurrency control on status updates.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsumerID      uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	OrderDate       time.Time       `gorm:"index"`
	Status          int             `gorm:"index"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryTax     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
	Version         int
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Items are written
// together with their order and never mutated afterwards.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
			Subtotal:  item.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ConsumerID:      aggregate.ConsumerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		OrderDate:       aggregate.OrderDate(),
		Status:          int(aggregate.Status()),
		Subtotal:        aggregate.Subtotal().Decimal(),
		DeliveryTax:     aggregate.DeliveryTax().Decimal(),
		Total:           aggregate.Total().Decimal(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	consumerID, err := kernel.UUIDFromBytes(dto.ConsumerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		consumerID,
		restaurantID,
		dto.DeliveryAddress,
		dto.OrderDate,
		order.Status(dto.Status),
		kernel.NewMoneyFromDecimal(dto.Subtotal),
		kernel.NewMoneyFromDecimal(dto.DeliveryTax),
		kernel.NewMoneyFromDecimal(dto.Total),
		items,
		dto.Version,
	)
}

func toDomainItem(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(
		id,
		productID,
		dto.Quantity,
		kernel.NewMoneyFromDecimal(dto.UnitPrice),
		kernel.NewMoneyFromDecimal(dto.Subtotal),
	)
}
