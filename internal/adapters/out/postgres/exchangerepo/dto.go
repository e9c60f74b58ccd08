// Package exchangerepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package exchangerepo

import (
	"time"

	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Requester and provider columns are indexed for the per-actor history view;
// status is indexed for the stale-request sweep.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      uuid.UUID `gorm:"type:uuid;index"`
	ItemKind    int
	RequesterID uuid.UUID `gorm:"type:uuid;index"`
	ProviderID  uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *exchange.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ItemID:      aggregate.ItemID().Bytes(),
		ItemKind:    int(aggregate.ItemKind()),
		RequesterID: aggregate.RequesterID().Bytes(),
		ProviderID:  aggregate.ProviderID().Bytes(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*exchange.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	return exchange.RestoreOrder(
		id,
		itemID,
		exchange.ItemKind(dto.ItemKind),
		requesterID,
		providerID,
		exchange.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
