package commands

import (
	"context"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/exchange"
)

// CompleteExchangeCommandHandler processes exchange completion.
// Completion moves the reserved item to collected, its terminal state, and
// unlocks rating for both participants.
type CompleteExchangeCommandHandler struct {
	uowFactory ExchangeUoWFactory
}

// NewCompleteExchangeCommandHandler creates a handler for exchange completion.
func NewCompleteExchangeCommandHandler(uowFactory ExchangeUoWFactory) CompleteExchangeCommandHandler {
	return CompleteExchangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Writes the order first, then conditionally marks the item collected.
// Re-completing an already completed order is a no-op.
func (h CompleteExchangeCommandHandler) Handle(ctx context.Context, command CompleteExchangeCommand) error {
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

	previousStatus := order.Status()
	if err := order.Complete(command.ActorID()); err != nil {
		return err
	}

	if previousStatus == exchange.Completed {
		return nil
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	err = uow.BatchRepository().UpdateStatus(ctx, order.ItemID(), batch.Reserved, batch.Collected)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
