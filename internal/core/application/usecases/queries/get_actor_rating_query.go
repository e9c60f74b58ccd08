package queries

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrGetActorRatingQueryIsNotConstructed = errors.New(
	"GetActorRatingQuery must be created via NewGetActorRatingQuery constructor",
)

// GetActorRatingQuery retrieves an actor's aggregate reputation: the average
// score and the number of ratings received. Reported ratings are excluded
// from both figures until moderation clears them.
type GetActorRatingQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActorRatingQuery creates a query for an actor's reputation.
func NewGetActorRatingQuery(actorID kernel.UUID) (GetActorRatingQuery, error) {
	ratingQuery := GetActorRatingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := ratingQuery.setActorID(actorID); err != nil {
		return GetActorRatingQuery{}, err
	}

	return ratingQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActorRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetActorRatingQueryIsNotConstructed)
}

// ActorID returns the identifier of the actor whose reputation is queried.
func (q GetActorRatingQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetActorRatingQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

// GetActorRatingQueryResponse represents an actor's aggregate reputation.
// Average is 0 when the actor has no unreported ratings.
type GetActorRatingQueryResponse struct {
	ActorID kernel.UUID
	Average float64
	Count   int64
}
