package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrReportRatingCommandIsNotConstructed = errors.New(
	"ReportRatingCommand must be created via NewReportRatingCommand constructor",
)

// ReportRatingCommand represents flagging a rating for moderation.
// The admin capability is resolved by the inbound adapter before the command
// is built, so the handler never consults the identity store itself.
type ReportRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID kernel.UUID
	actorID  kernel.UUID
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewReportRatingCommand creates a command to report a rating.
func NewReportRatingCommand(ratingID, actorID kernel.UUID, isAdmin bool) (ReportRatingCommand, error) {
	reportCommand := ReportRatingCommand{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportCommand.setRatingID(ratingID),
		reportCommand.setActorID(actorID),
	); err != nil {
		return ReportRatingCommand{}, err
	}

	return reportCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportRatingCommand) Validate() error {
	return c.guard.Validate(ErrReportRatingCommandIsNotConstructed)
}

// RatingID returns the identifier of the rating being reported.
func (c ReportRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

// ActorID returns the identifier of the actor filing the report.
func (c ReportRatingCommand) ActorID() kernel.UUID {
	return c.actorID
}

// IsAdmin reports whether the acting user holds the admin capability.
func (c ReportRatingCommand) IsAdmin() bool {
	return c.isAdmin
}

func (c *ReportRatingCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}

	c.ratingID = ratingID
	return nil
}

func (c *ReportRatingCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
