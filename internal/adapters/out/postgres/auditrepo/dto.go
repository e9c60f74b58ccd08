// Package auditrepo provides data transfer objects and mapping functions
// for the administrative audit trail. The table is append-only: entries are
// written once and never updated or deleted.
package auditrepo

import (
	"time"

	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit entries.
type EntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityType     int
	EntityID       uuid.UUID `gorm:"type:uuid;index"`
	AdminID        uuid.UUID `gorm:"type:uuid;index"`
	PreviousStatus string
	NewStatus      string
	Note           string
	CreatedAt      time.Time
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(aggregate *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:             aggregate.ID().Bytes(),
		EntityType:     int(aggregate.EntityType()),
		EntityID:       aggregate.EntityID().Bytes(),
		AdminID:        aggregate.AdminID().Bytes(),
		PreviousStatus: aggregate.PreviousStatus(),
		NewStatus:      aggregate.NewStatus(),
		Note:           aggregate.Note(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}

	adminID, err := kernel.UUIDFromBytes(dto.AdminID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		id,
		audit.EntityType(dto.EntityType),
		entityID,
		adminID,
		dto.PreviousStatus,
		dto.NewStatus,
		dto.Note,
		dto.CreatedAt,
	)
}
