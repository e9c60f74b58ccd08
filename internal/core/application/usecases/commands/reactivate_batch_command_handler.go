package commands

import (
	"context"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/pkg/errs"
)

// ReactivationPolicy decides who may put a cancelled batch back on the
// marketplace. Deployments that want admins to revive listings on behalf of
// owners run with ReactivationPolicyOwnerOrAdmin.
type ReactivationPolicy int

const (
	// ReactivationPolicyOwnerOnly restricts reactivation to the batch owner.
	ReactivationPolicyOwnerOnly ReactivationPolicy = iota
	// ReactivationPolicyOwnerOrAdmin also allows admins to reactivate.
	ReactivationPolicyOwnerOrAdmin
)

// ReactivateBatchCommandHandler processes batch reactivation.
type ReactivateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	policy     ReactivationPolicy
}

// NewReactivateBatchCommandHandler creates a handler for batch reactivation
// with the given authorization policy.
func NewReactivateBatchCommandHandler(
	uowFactory BatchUoWFactory,
	policy ReactivationPolicy,
) ReactivateBatchCommandHandler {
	return ReactivateBatchCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the reactivation command.
// Only a cancelled batch can be reactivated; the write is conditional on
// the batch still being cancelled at commit time.
func (h ReactivateBatchCommandHandler) Handle(ctx context.Context, command ReactivateBatchCommand) error {
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

	reactivated, err := uow.BatchRepository().Get(ctx, command.BatchID())
	if err != nil {
		return err
	}

	if !h.isAuthorized(reactivated, command) {
		return errs.NewNotAuthorizedError(command.ActorID().String(), "reactivate this batch")
	}

	previousStatus := reactivated.Status()
	if err := reactivated.Reactivate(); err != nil {
		return err
	}

	err = uow.BatchRepository().UpdateStatus(ctx, command.BatchID(), previousStatus, batch.Available)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ReactivateBatchCommandHandler) isAuthorized(b *batch.Batch, command ReactivateBatchCommand) bool {
	if b.IsOwnedBy(command.ActorID()) {
		return true
	}

	return h.policy == ReactivationPolicyOwnerOrAdmin && command.IsAdmin()
}
