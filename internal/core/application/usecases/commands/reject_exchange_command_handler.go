package commands

import (
	"context"

	"exchange/internal/core/domain/model/exchange"
)

// RejectExchangeCommandHandler processes request rejection.
// Rejection only touches the order; the item was never reserved for a
// pending request, so it stays available for the remaining requesters.
type RejectExchangeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectExchangeCommandHandler creates a handler for request rejection.
func NewRejectExchangeCommandHandler(uowFactory OrderUoWFactory) RejectExchangeCommandHandler {
	return RejectExchangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// Re-rejecting an already rejected order is a no-op.
func (h RejectExchangeCommandHandler) Handle(ctx context.Context, command RejectExchangeCommand) error {
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
	if err := order.Reject(command.ActorID()); err != nil {
		return err
	}

	if previousStatus == exchange.Rejected {
		return nil
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
