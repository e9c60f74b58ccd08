package services

import (
	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/domain/model/rating"
	"exchange/internal/pkg/errs"
)

// RatingEligibility is the domain service that gatekeeps rating submission
// for completed exchange orders.
//
// An actor may rate iff:
//   - the order is Completed
//   - the actor is one of the order's two participants
//   - the actor has not already submitted a rating for this order
//
// The service only decides; it holds no state and writes nothing. The unique
// index on (order, rater) in the store is the backstop for the race where
// two submissions pass this check concurrently.
type RatingEligibility struct{}

// NewRatingEligibility creates a new RatingEligibility service.
func NewRatingEligibility() RatingEligibility {
	return RatingEligibility{}
}

// CanRate returns nil when actorID may submit a rating for the order, given
// the ratings already recorded for it. Failures are typed:
//   - NotEligibleError when the order is not completed or the actor is not a
//     participant
//   - DuplicateRatingError when the actor already rated this order
func (s RatingEligibility) CanRate(
	order *exchange.Order,
	actorID kernel.UUID,
	existingRatings []*rating.Rating,
) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	if order.Status() != exchange.Completed {
		return errs.NewNotEligibleError("order is not completed")
	}

	if !order.IsParticipant(actorID) {
		return errs.NewNotEligibleError("actor is not a participant of this order")
	}

	for _, r := range existingRatings {
		if r.OrderID().IsEqual(order.ID()) && r.RaterID().IsEqual(actorID) {
			return errs.NewDuplicateRatingError(order.ID().String(), actorID.String())
		}
	}

	return nil
}

// CounterpartOf returns the other participant of the order: the provider
// when actorID is the requester, and the requester when actorID is the
// provider. A non-participant gets a NotEligibleError.
func (s RatingEligibility) CounterpartOf(order *exchange.Order, actorID kernel.UUID) (kernel.UUID, error) {
	if err := order.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := actorID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	switch {
	case order.RequesterID().IsEqual(actorID):
		return order.ProviderID(), nil
	case order.ProviderID().IsEqual(actorID):
		return order.RequesterID(), nil
	default:
		return kernel.UUID{}, errs.NewNotEligibleError("actor is not a participant of this order")
	}
}
