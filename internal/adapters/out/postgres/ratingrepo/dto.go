// Package ratingrepo provides data transfer objects and mapping functions
// for rating persistence.
package ratingrepo

import (
	"time"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting ratings.
// The unique index on (order, rater) is the write-time backstop for the
// one-rating-per-participant rule; the eligibility check in the application
// layer can lose a race, the index cannot.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rater"`
	RaterID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rater"`
	RatedID   uuid.UUID `gorm:"type:uuid;index"`
	Score     int
	Comment   string
	Reported  bool
	CreatedAt time.Time
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		RaterID:   aggregate.RaterID().Bytes(),
		RatedID:   aggregate.RatedID().Bytes(),
		Score:     aggregate.Score(),
		Comment:   aggregate.Comment(),
		Reported:  aggregate.IsReported(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	raterID, err := kernel.UUIDFromBytes(dto.RaterID[:])
	if err != nil {
		return nil, err
	}

	ratedID, err := kernel.UUIDFromBytes(dto.RatedID[:])
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(
		id,
		orderID,
		raterID,
		ratedID,
		dto.Score,
		dto.Comment,
		dto.Reported,
		dto.CreatedAt,
	)
}
