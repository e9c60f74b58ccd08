package commands

import (
	"context"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/exchange"
)

// CancelExchangeCommandHandler processes exchange cancellation.
// Cancelling an accepted order must hand the item back to the marketplace;
// cancelling a pending one only closes the order.
type CancelExchangeCommandHandler struct {
	uowFactory ExchangeUoWFactory
}

// NewCancelExchangeCommandHandler creates a handler for exchange cancellation.
func NewCancelExchangeCommandHandler(uowFactory ExchangeUoWFactory) CancelExchangeCommandHandler {
	return CancelExchangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// If the order was accepted, the item it reserved is released back to
// available in the same transaction. Re-cancelling is a no-op.
func (h CancelExchangeCommandHandler) Handle(ctx context.Context, command CancelExchangeCommand) error {
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
	if err := order.Cancel(command.ActorID()); err != nil {
		return err
	}

	if previousStatus == exchange.Cancelled {
		return nil
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if previousStatus == exchange.Accepted {
		err = uow.BatchRepository().UpdateStatus(ctx, order.ItemID(), batch.Reserved, batch.Available)
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
