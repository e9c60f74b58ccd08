package commands

import (
	"context"

	"exchange/internal/core/domain/model/batch"
)

// CreateBatchCommandHandler processes batch publication commands.
// Creates a new batch aggregate in the available state and persists it
// within a transaction.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for batch publication.
func NewCreateBatchCommandHandler(uowFactory BatchUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch publication command.
// Validates the command, creates the batch aggregate, and persists it.
func (h CreateBatchCommandHandler) Handle(ctx context.Context, command CreateBatchCommand) error {
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

	newBatch, err := batch.NewBatch(
		command.BatchID(),
		command.OwnerID(),
		command.Title(),
		command.Category(),
		command.QuantityKg(),
	)
	if err != nil {
		return err
	}

	if err := uow.BatchRepository().Add(ctx, newBatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
