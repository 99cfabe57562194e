// Package consumerrepo persists consumer profiles.
package consumerrepo

import (
	"foodorder/internal/core/domain/model/consumer"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConsumerDTO represents the database structure for consumer profiles.
type ConsumerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string `gorm:"uniqueIndex"`
	Phone   string
	Address string
	Active  bool
}

// TableName specifies the database table name for consumer entities.
func (ConsumerDTO) TableName() string {
	return "consumers"
}

func fromDomain(aggregate *consumer.Consumer) ConsumerDTO {
	return ConsumerDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Email:   aggregate.Email(),
		Phone:   aggregate.Phone(),
		Address: aggregate.Address(),
		Active:  aggregate.IsActive(),
	}
}

func toDomain(dto ConsumerDTO) (*consumer.Consumer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return consumer.RestoreConsumer(id, dto.Name, dto.Email, dto.Phone, dto.Address, dto.Active)
}
