package batchrepo

import (
	"context"
	"errors"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add batch", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing batch to the database.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BatchDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update batch", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("batch", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get batch", err)
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all batches open for requests.
func (r *GormBatchRepository) GetAllAvailable(ctx context.Context) ([]*batch.Batch, error) {
	var dtos []BatchDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(batch.Available)).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("list available batches", err)
	}

	batches := make([]*batch.Batch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, nil
}

// UpdateStatus performs a conditional status write: the row changes only if
// its status still equals expected. A zero-row update means the batch moved
// since the caller's read, which surfaces as AlreadyResolvedError carrying
// the status that won.
func (r *GormBatchRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, target batch.Status,
) error {
	if err := errors.Join(id.Validate(), expected.Validate(), target.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&BatchDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(expected)).
		Update("status", int(target))
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update batch status", result.Error)
	}

	if result.RowsAffected == 0 {
		var dto BatchDTO
		err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("batch", id.String())
		}
		if err != nil {
			return errs.NewStoreUnavailableError("update batch status", err)
		}
		return errs.NewAlreadyResolvedError("batch", id.String(), batch.Status(dto.Status).String())
	}

	return nil
}
