package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/domain/model/rating"
	"exchange/internal/pkg/errs"
	"exchange/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents a participant rating their counterpart
// after a completed exchange. The rated actor is not part of the command;
// it is derived from the order so a rater can never pick their own target.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID kernel.UUID
	orderID  kernel.UUID
	raterID  kernel.UUID
	score    int
	comment  string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to submit a rating.
// Validates that all IDs are valid and the score is within the 1..5 scale.
// The comment is optional.
func NewSubmitRatingCommand(
	ratingID, orderID, raterID kernel.UUID,
	score int,
	comment string,
) (SubmitRatingCommand, error) {
	ratingCommand := SubmitRatingCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ratingCommand.setRatingID(ratingID),
		ratingCommand.setOrderID(orderID),
		ratingCommand.setRaterID(raterID),
		ratingCommand.setScore(score),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return ratingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// RatingID returns the unique identifier for the new rating.
func (c SubmitRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

// OrderID returns the identifier of the completed order being rated.
func (c SubmitRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RaterID returns the identifier of the participant submitting the rating.
func (c SubmitRatingCommand) RaterID() kernel.UUID {
	return c.raterID
}

// Score returns the rating score on the 1..5 scale.
func (c SubmitRatingCommand) Score() int {
	return c.score
}

// Comment returns the optional free-text comment.
func (c SubmitRatingCommand) Comment() string {
	return c.comment
}

func (c *SubmitRatingCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}

	c.ratingID = ratingID
	return nil
}

func (c *SubmitRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitRatingCommand) setRaterID(raterID kernel.UUID) error {
	if err := raterID.Validate(); err != nil {
		return err
	}

	c.raterID = raterID
	return nil
}

func (c *SubmitRatingCommand) setScore(score int) error {
	if score < rating.MinScore || score > rating.MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, rating.MinScore, rating.MaxScore)
	}

	c.score = score
	return nil
}
