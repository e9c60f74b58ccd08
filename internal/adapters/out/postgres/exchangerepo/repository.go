package exchangerepo

import (
	"context"
	"errors"
	"time"

	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *exchange.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *exchange.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*exchange.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get order", err)
	}

	return toDomain(dto)
}

// GetAllForActor retrieves every order the actor participates in, on either
// side of the exchange, newest first.
func (r *GormOrderRepository) GetAllForActor(
	ctx context.Context,
	actorID kernel.UUID,
) ([]*exchange.Order, error) {
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("requester_id = ? OR provider_id = ?", actorID.Bytes(), actorID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list orders for actor", err)
	}

	return toDomainSlice(dtos)
}

// GetAllPendingOlderThan retrieves pending orders created before the cutoff.
func (r *GormOrderRepository) GetAllPendingOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]*exchange.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", int(exchange.Pending), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list stale pending orders", err)
	}

	return toDomainSlice(dtos)
}

// GetPendingCountForItem counts the open requests against one item.
func (r *GormOrderRepository) GetPendingCountForItem(
	ctx context.Context,
	itemID kernel.UUID,
) (int64, error) {
	if err := itemID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("item_id = ? AND status = ?", itemID.Bytes(), int(exchange.Pending)).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewStoreUnavailableError("count pending orders", err)
	}

	return count, nil
}

// UpdateStatus performs a conditional status write, mirroring the batch
// repository: a zero-row update means the order was resolved concurrently.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, target exchange.Status,
) error {
	if err := errors.Join(id.Validate(), expected.Validate(), target.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(expected)).
		Updates(map[string]any{"status": int(target), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		var dto OrderDTO
		err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		if err != nil {
			return errs.NewStoreUnavailableError("update order status", err)
		}
		return errs.NewAlreadyResolvedError("order", id.String(), exchange.Status(dto.Status).String())
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*exchange.Order, error) {
	orders := make([]*exchange.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
