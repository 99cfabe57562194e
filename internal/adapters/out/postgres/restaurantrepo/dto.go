// Package restaurantrepo persists restaurants and their product catalogs.
package restaurantrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	Category    string
	Address     string
	Phone       string
	DeliveryTax decimal.Decimal `gorm:"type:numeric(12,2)"`
	Active      bool
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Category     string
	Available    bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Category:    aggregate.Category(),
		Address:     aggregate.Address(),
		Phone:       aggregate.Phone(),
		DeliveryTax: aggregate.DeliveryTax().Decimal(),
		Active:      aggregate.IsActive(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id, dto.Name, dto.Category, dto.Address, dto.Phone,
		kernel.NewMoneyFromDecimal(dto.DeliveryTax), dto.Active,
	)
}

func fromDomainProduct(product *restaurant.Product) ProductDTO {
	return ProductDTO{
		ID:           product.ID().Bytes(),
		RestaurantID: product.RestaurantID().Bytes(),
		Name:         product.Name(),
		Description:  product.Description(),
		Price:        product.Price().Decimal(),
		Category:     product.Category(),
		Available:    product.IsAvailable(),
	}
}

func toDomainProduct(dto ProductDTO) (*restaurant.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreProduct(
		id, restaurantID, dto.Name, dto.Description,
		kernel.NewMoneyFromDecimal(dto.Price), dto.Category, dto.Available,
	)
}
