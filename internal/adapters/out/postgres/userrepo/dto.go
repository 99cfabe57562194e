// Package userrepo persists login accounts.
package userrepo

import (
	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for login accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Role         int
	ConsumerID   *uuid.UUID `gorm:"type:uuid"`
	RestaurantID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for account entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *actor.User) UserDTO {
	var consumerID, restaurantID *uuid.UUID
	if id := aggregate.ConsumerID(); id != nil {
		raw := id.Bytes()
		consumerID = &raw
	}
	if id := aggregate.RestaurantID(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		ConsumerID:   consumerID,
		RestaurantID: restaurantID,
	}
}

func toDomain(dto UserDTO) (*actor.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var consumerID, restaurantID *kernel.UUID
	if dto.ConsumerID != nil {
		cID, linkErr := kernel.UUIDFromBytes((*dto.ConsumerID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		consumerID = &cID
	}
	if dto.RestaurantID != nil {
		rID, linkErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		restaurantID = &rID
	}

	return actor.RestoreUser(
		id, dto.Email, dto.PasswordHash, actor.Role(dto.Role),
		consumerID, restaurantID,
	)
}
