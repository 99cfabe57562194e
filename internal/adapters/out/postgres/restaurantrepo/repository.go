package restaurantrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a new restaurant. A duplicate name maps to a conflict error.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("name", aggregate.Name(), err)
		}
		return err
	}

	return nil
}

// Update saves changes to an existing restaurant.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Category", "Address", "Phone", "DeliveryTax", "Active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurantId", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddProduct saves a new catalog product.
func (r *GormRestaurantRepository) AddProduct(ctx context.Context, product *restaurant.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomainProduct(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateProduct saves changes to an existing catalog product.
func (r *GormRestaurantRepository) UpdateProduct(ctx context.Context, product *restaurant.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomainProduct(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Description", "Price", "Category", "Available").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", product.ID().String())
	}

	return nil
}

// GetProduct retrieves a catalog product by ID.
func (r *GormRestaurantRepository) GetProduct(ctx context.Context, id kernel.UUID) (*restaurant.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, err
	}

	return toDomainProduct(dto)
}

// GetProducts retrieves a restaurant's full catalog.
func (r *GormRestaurantRepository) GetProducts(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Product, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).Order("name").Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	products := make([]*restaurant.Product, 0, len(dtos))
	for _, dto := range dtos {
		product, prodErr := toDomainProduct(dto)
		if prodErr != nil {
			return nil, prodErr
		}
		products = append(products, product)
	}

	return products, nil
}
