package commands

import (
	"context"
	"time"
)

// ExpireStaleRequestsCommandHandler sweeps pending requests past their TTL.
// Runs on a schedule; each sweep rejects every stale request in one
// transaction. Rejection is a legal pending-state edge, so the sweep goes
// through the same aggregate method a provider would use.
type ExpireStaleRequestsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleRequestsCommandHandler creates a handler for the stale
// request sweep.
func NewExpireStaleRequestsCommandHandler(uowFactory OrderUoWFactory) ExpireStaleRequestsCommandHandler {
	return ExpireStaleRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and returns how many requests expired.
// The rejection is performed on the provider's behalf; the items referenced
// by the expired requests were never reserved and need no compensation.
func (h ExpireStaleRequestsCommandHandler) Handle(
	ctx context.Context,
	command ExpireStaleRequestsCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-command.TTL())
	stale, err := uow.OrderRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if len(stale) == 0 {
		return 0, nil
	}

	for _, order := range stale {
		if err := order.Reject(order.ProviderID()); err != nil {
			return 0, err
		}

		if err := uow.OrderRepository().Update(ctx, order); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
