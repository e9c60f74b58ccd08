package commands

import (
	"context"

	"exchange/internal/core/domain/model/rating"
	"exchange/internal/core/domain/services"
)

// SubmitRatingCommandHandler processes rating submission.
// Eligibility is decided by the domain service against the order and the
// ratings already on record, inside the same transaction that inserts the
// new rating. A unique constraint in the store backs the duplicate check up
// against concurrent submissions.
type SubmitRatingCommandHandler struct {
	uowFactory  RatingUoWFactory
	eligibility services.RatingEligibility
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(
	uowFactory RatingUoWFactory,
	eligibility services.RatingEligibility,
) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory:  uowFactory,
		eligibility: eligibility,
	}
}

// Handle processes the rating submission command.
// Returns NotEligibleError when the order is not completed or the rater is
// not a participant, and DuplicateRatingError when the rater already rated
// this order.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, command SubmitRatingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	existing, err := uow.RatingRepository().GetAllForOrder(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := h.eligibility.CanRate(order, command.RaterID(), existing); err != nil {
		return err
	}

	ratedID, err := h.eligibility.CounterpartOf(order, command.RaterID())
	if err != nil {
		return err
	}

	newRating, err := rating.NewRating(
		command.RatingID(),
		command.OrderID(),
		command.RaterID(),
		ratedID,
		command.Score(),
		command.Comment(),
	)
	if err != nil {
		return err
	}

	if err := uow.RatingRepository().Add(ctx, newRating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
