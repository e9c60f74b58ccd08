package auditrepo

import (
	"context"

	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
// It exposes no update or delete: the trail only grows.
type GormAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditRepository {
	return &GormAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new entry to the audit trail.
func (r *GormAuditRepository) Add(ctx context.Context, aggregate *audit.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add audit entry", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForEntity retrieves the override history of one entity, newest first.
func (r *GormAuditRepository) GetAllForEntity(
	ctx context.Context,
	entityID kernel.UUID,
) ([]*audit.Entry, error) {
	if err := entityID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("entity_id = ?", entityID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list audit entries", err)
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
