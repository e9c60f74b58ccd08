package commands

import (
	"context"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/exchange"
)

// AcceptExchangeCommandHandler processes request acceptance.
// This is the race-sensitive operation of the lifecycle: two providers never
// compete for one order, but one provider may race an admin override or a
// concurrent cancellation for the item. The item write is conditional on the
// status observed being still current, so exactly one acceptance can win.
type AcceptExchangeCommandHandler struct {
	uowFactory ExchangeUoWFactory
}

// NewAcceptExchangeCommandHandler creates a handler for request acceptance.
func NewAcceptExchangeCommandHandler(uowFactory ExchangeUoWFactory) AcceptExchangeCommandHandler {
	return AcceptExchangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Moves the order to accepted and reserves the item in one transaction,
// writing the order first so an interrupted run leaves state that a retry
// repairs. Re-accepting an already accepted order is a no-op. If the item
// is no longer available the transaction rolls back and the order stays
// pending; the caller receives an AlreadyResolvedError naming the batch.
func (h AcceptExchangeCommandHandler) Handle(ctx context.Context, command AcceptExchangeCommand) error {
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
	if err := order.Accept(command.ActorID()); err != nil {
		return err
	}

	if previousStatus == exchange.Accepted {
		// Retry of an acceptance that already went through. Nothing to write.
		return nil
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	err = uow.BatchRepository().UpdateStatus(ctx, order.ItemID(), batch.Available, batch.Reserved)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
