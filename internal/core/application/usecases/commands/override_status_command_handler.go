package commands

import (
	"context"

	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/batch"
	"exchange/internal/pkg/errs"
)

// OverrideStatusCommandHandler processes administrative status overrides.
// The status write and the audit entry commit in a single transaction, so
// an override is either fully recorded or did not happen. Failures are
// wrapped in an OverrideError naming the stage that broke.
type OverrideStatusCommandHandler struct {
	uowFactory OverrideUoWFactory
}

// NewOverrideStatusCommandHandler creates a handler for status overrides.
func NewOverrideStatusCommandHandler(uowFactory OverrideUoWFactory) OverrideStatusCommandHandler {
	return OverrideStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command.
// Rejects non-admin actors and illegal transitions before any write; the
// transition table applies to admins unchanged, so a collected item cannot
// be moved even here. The item write is conditional on the status read in
// this transaction, losing the race to a concurrent change rather than
// clobbering it.
func (h OverrideStatusCommandHandler) Handle(ctx context.Context, command OverrideStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if !command.IsAdmin() {
		return errs.NewNotAuthorizedError(command.AdminID().String(), "override item status")
	}

	target, err := batch.StatusFromString(command.NewStatus())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.BatchRepository().Get(ctx, command.EntityID())
	if err != nil {
		return err
	}

	previousStatus := item.Status()
	if err := item.ChangeStatusTo(target); err != nil {
		// Illegal transition: nothing was written, no audit entry is left.
		return err
	}

	err = uow.BatchRepository().UpdateStatus(ctx, command.EntityID(), previousStatus, target)
	if err != nil {
		return errs.NewOverrideError(errs.OverrideStageStatus, err)
	}

	entry, err := audit.NewEntry(
		command.EntryID(),
		command.EntityType(),
		command.EntityID(),
		command.AdminID(),
		previousStatus.String(),
		target.String(),
		command.Note(),
	)
	if err != nil {
		return err
	}

	if err := uow.AuditRepository().Add(ctx, entry); err != nil {
		return errs.NewOverrideError(errs.OverrideStageAudit, err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.NewOverrideError(errs.OverrideStageCommit, err)
	}

	return nil
}
