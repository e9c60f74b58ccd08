package commands

import (
	"context"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/pkg/errs"
)

// RequestExchangeCommandHandler processes exchange requests.
// Creates a pending order against an available item. Several actors may hold
// pending requests for the same item at once; the provider picks one by
// accepting it.
type RequestExchangeCommandHandler struct {
	uowFactory ExchangeUoWFactory
}

// NewRequestExchangeCommandHandler creates a handler for exchange requests.
func NewRequestExchangeCommandHandler(uowFactory ExchangeUoWFactory) RequestExchangeCommandHandler {
	return RequestExchangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the exchange request command.
// Verifies the item is available and not owned by the requester, then
// persists a pending order pointing at it. The item itself is not modified;
// reservation happens when the provider accepts.
func (h RequestExchangeCommandHandler) Handle(ctx context.Context, command RequestExchangeCommand) error {
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

	item, err := uow.BatchRepository().Get(ctx, command.ItemID())
	if err != nil {
		return err
	}

	if item.IsOwnedBy(command.RequesterID()) {
		return errs.NewNotAuthorizedError(command.RequesterID().String(), "request their own listing")
	}

	if item.Status() != batch.Available {
		return errs.NewAlreadyResolvedError("batch", item.ID().String(), item.Status().String())
	}

	order, err := exchange.NewOrder(
		command.OrderID(),
		command.ItemID(),
		command.ItemKind(),
		command.RequesterID(),
		item.OwnerID(),
	)
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
