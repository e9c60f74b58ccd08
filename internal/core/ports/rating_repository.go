package ports

import (
	"context"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for ratings.
type RatingRepository interface {
	// Add persists a new rating. The store carries a unique index on
	// (order, rater); a conflict there comes back as DuplicateRatingError,
	// the backstop for two submissions racing past the eligibility check.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// Get retrieves a rating by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error)

	// GetAllForOrder retrieves all ratings submitted for an order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*rating.Rating, error)

	// GetByOrderAndRater retrieves the rating an actor submitted for an
	// order, or ObjectNotFoundError when none exists.
	GetByOrderAndRater(ctx context.Context, orderID, raterID kernel.UUID) (*rating.Rating, error)

	// Update persists changes to an existing rating (the reported flag is the
	// only field this core ever changes).
	Update(ctx context.Context, aggregate *rating.Rating) error
}
