// Package batchrepo provides data transfer objects and mapping functions for
// batch persistence. It implements the repository pattern for the batch
// aggregate, converting between domain entities and database rows.
package batchrepo

import (
	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// Status is indexed because the marketplace listing and the conditional
// status writes both filter on it.
type BatchDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;index"`
	Title      string
	Category   string
	QuantityKg int
	Status     int `gorm:"index"`
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

func fromDomain(aggregate *batch.Batch) BatchDTO {
	return BatchDTO{
		ID:         aggregate.ID().Bytes(),
		OwnerID:    aggregate.OwnerID().Bytes(),
		Title:      aggregate.Title(),
		Category:   aggregate.Category(),
		QuantityKg: aggregate.QuantityKg(),
		Status:     int(aggregate.Status()),
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(id, ownerID, dto.Title, dto.Category, dto.QuantityKg, batch.Status(dto.Status))
}
