package ratingrepo

import (
	"context"
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/domain/model/rating"
	"exchange/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating to the database. A violation of the (order, rater)
// unique index comes back as DuplicateRatingError, which requires the
// connection to be opened with TranslateError enabled.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateRatingError(aggregate.OrderID().String(), aggregate.RaterID().String())
		}
		return errs.NewStoreUnavailableError("add rating", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rating by ID.
func (r *GormRatingRepository) Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get rating", err)
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves the ratings recorded against one order.
// At most two exist, one per participant.
func (r *GormRatingRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*rating.Rating, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RatingDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("list ratings for order", err)
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}

	return ratings, nil
}

// GetByOrderAndRater retrieves the rating one participant left on one order.
func (r *GormRatingRepository) GetByOrderAndRater(
	ctx context.Context,
	orderID, raterID kernel.UUID,
) (*rating.Rating, error) {
	if err := errors.Join(orderID.Validate(), raterID.Validate()); err != nil {
		return nil, err
	}

	var dto RatingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND rater_id = ?", orderID.Bytes(), raterID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", orderID.String())
		}
		return nil, errs.NewStoreUnavailableError("get rating by order and rater", err)
	}

	return toDomain(dto)
}

// Update saves an existing rating to the database.
func (r *GormRatingRepository) Update(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("id = ?", dto.ID).
		Select("score", "comment", "reported").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update rating", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rating", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
