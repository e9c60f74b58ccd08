// Package rating provides the domain model for post-exchange ratings: one
// participant's evaluation of the counterpart in a specific completed order.
//
// Key business rules:
//   - Score is an integer from 1 to 5
//   - Rater and rated actor are always distinct
//   - At most one rating exists per (order, rater) pair; the eligibility
//     service gates creation and the store's unique index is the backstop
//   - Ratings are never deleted; a reported rating is flagged and stops
//     counting toward the rated actor's aggregate
package rating

import (
	"errors"
	"time"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"
)

const (
	// MinScore is the lowest permitted rating score.
	MinScore = 1
	// MaxScore is the highest permitted rating score.
	MaxScore = 5
)

var (
	// ErrRatingIsNotConstructed is returned when a Rating instance was not
	// created through NewRating or RestoreRating.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating constructor")

	// ErrRaterEqualsRated is returned when an actor tries to rate themselves.
	ErrRaterEqualsRated = errs.NewValueIsInvalidError("rater and rated actor must be different")
)

// Rating is one actor's evaluation of the counterpart in a completed
// exchange order. Immutable after creation except for the reported flag.
type Rating struct {
	// id is the unique identifier for the rating
	id kernel.UUID

	// orderID references the completed exchange order being rated
	orderID kernel.UUID

	// raterID is the participant submitting the rating
	raterID kernel.UUID

	// ratedID is the counterpart being evaluated
	ratedID kernel.UUID

	// score is the evaluation, MinScore..MaxScore
	score int

	// comment is an optional free-text remark
	comment string

	// reported marks the rating as flagged; reported ratings are excluded
	// from the rated actor's aggregate but never deleted
	reported bool

	// createdAt is when the rating was submitted
	createdAt time.Time

	// isConstructed ensures the rating was created via a constructor
	isConstructed bool
}

// NewRating creates a validated Rating. Eligibility (order completed, actor
// a participant, no prior rating) is checked by the eligibility service
// before this constructor is reached; the constructor only guards the value
// invariants.
func NewRating(id, orderID, raterID, ratedID kernel.UUID, score int, comment string) (*Rating, error) {
	r := &Rating{
		comment:       comment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setActors(raterID, ratedID),
		r.setScore(score),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRating reconstructs a Rating from persistence.
func RestoreRating(
	id, orderID, raterID, ratedID kernel.UUID,
	score int,
	comment string,
	reported bool,
	createdAt time.Time,
) (*Rating, error) {
	r, err := NewRating(id, orderID, raterID, ratedID, score, comment)
	if err != nil {
		return nil, err
	}

	r.reported = reported
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Rating instance was properly constructed.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the rated exchange order's identifier.
func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

// RaterID returns the actor that submitted the rating.
func (r *Rating) RaterID() kernel.UUID {
	return r.raterID
}

// RatedID returns the actor being evaluated.
func (r *Rating) RatedID() kernel.UUID {
	return r.ratedID
}

// Score returns the evaluation score.
func (r *Rating) Score() int {
	return r.score
}

// Comment returns the optional free-text remark.
func (r *Rating) Comment() string {
	return r.comment
}

// IsReported reports whether the rating has been flagged.
func (r *Rating) IsReported() bool {
	return r.reported
}

// CreatedAt returns when the rating was submitted.
func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

// Report flags the rating. Reporting an already-reported rating is a no-op;
// the flag is never cleared by this core.
func (r *Rating) Report() {
	r.reported = true
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Rating) setActors(raterID, ratedID kernel.UUID) error {
	if err := raterID.Validate(); err != nil {
		return err
	}
	if err := ratedID.Validate(); err != nil {
		return err
	}
	if raterID.IsEqual(ratedID) {
		return ErrRaterEqualsRated
	}
	r.raterID = raterID
	r.ratedID = ratedID
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, MinScore, MaxScore)
	}
	r.score = score
	return nil
}
