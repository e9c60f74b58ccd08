package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActorRatingQueryHandler computes an actor's reputation in the database.
// The aggregation runs in SQL rather than in memory; reported ratings are
// filtered out before averaging.
type GetActorRatingQueryHandler struct {
	db *gorm.DB
}

// NewGetActorRatingQueryHandler creates a handler for reputation queries.
func NewGetActorRatingQueryHandler(db *gorm.DB) GetActorRatingQueryHandler {
	return GetActorRatingQueryHandler{db: db}
}

// Handle executes the query. An actor with no unreported ratings gets a zero
// average and a zero count, not an error.
func (h GetActorRatingQueryHandler) Handle(
	ctx context.Context,
	query GetActorRatingQuery,
) (GetActorRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActorRatingQueryResponse{}, err
	}

	resp := GetActorRatingQueryResponse{ActorID: query.ActorID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(AVG(score), 0),
			COUNT(*)
		FROM ratings
		WHERE rated_id = ? AND reported = false
	`, query.ActorID().Bytes()).Row()

	if err := row.Scan(&resp.Average, &resp.Count); err != nil {
		return GetActorRatingQueryResponse{}, err
	}

	return resp, nil
}
