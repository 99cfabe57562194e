package consumerrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/consumer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConsumerRepository implements ConsumerRepository using GORM.
type GormConsumerRepository struct {
	db *gorm.DB
}

// NewGormConsumerRepository creates a new GORM consumer repository.
func NewGormConsumerRepository(db *gorm.DB) *GormConsumerRepository {
	return &GormConsumerRepository{db: db}
}

// Add saves a new consumer. A duplicate email maps to a conflict error.
func (r *GormConsumerRepository) Add(ctx context.Context, aggregate *consumer.Consumer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("email", aggregate.Email(), err)
		}
		return err
	}

	return nil
}

// Update saves changes to an existing consumer.
func (r *GormConsumerRepository) Update(ctx context.Context, aggregate *consumer.Consumer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ConsumerDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Email", "Phone", "Address", "Active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consumerId", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a consumer by ID.
func (r *GormConsumerRepository) Get(ctx context.Context, id kernel.UUID) (*consumer.Consumer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConsumerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consumerId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
