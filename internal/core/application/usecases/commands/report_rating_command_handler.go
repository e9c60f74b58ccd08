package commands

import (
	"context"

	"exchange/internal/pkg/errs"
)

// ReportRatingCommandHandler processes rating reports.
// Reported ratings stay on record but are excluded from aggregate scores
// until moderation resolves them.
type ReportRatingCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewReportRatingCommandHandler creates a handler for rating reports.
func NewReportRatingCommandHandler(uowFactory RatingUoWFactory) ReportRatingCommandHandler {
	return ReportRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report command.
// Only the rated actor or an admin may file a report. Reporting an already
// reported rating is a no-op.
func (h ReportRatingCommandHandler) Handle(ctx context.Context, command ReportRatingCommand) error {
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

	reported, err := uow.RatingRepository().Get(ctx, command.RatingID())
	if err != nil {
		return err
	}

	if !command.IsAdmin() && !reported.RatedID().IsEqual(command.ActorID()) {
		return errs.NewNotAuthorizedError(command.ActorID().String(), "report this rating")
	}

	if reported.IsReported() {
		return nil
	}

	reported.Report()

	if err := uow.RatingRepository().Update(ctx, reported); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
