package commands_test

import (
	"errors"
	"testing"

	"exchange/internal/core/application/usecases/commands"
	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBatchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBatchCommand(kernel.NewUUID(), kernel.NewUUID(), "Coffee grounds", "organic", 12)
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*batch.Batch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBatchCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := repo.Calls[0].Arguments.Get(1).(*batch.Batch)
	require.Equal(t, batch.Available, added.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBatchCommandHandler_Handle_ValidationError(t *testing.T) {
	var cmd commands.CreateBatchCommand
	factory := new(MockBatchUoWFactory)

	h := commands.NewCreateBatchCommandHandler(factory)
	require.ErrorIs(t, h.Handle(t.Context(), cmd), commands.ErrCreateBatchCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBatchCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBatchCommand(kernel.NewUUID(), kernel.NewUUID(), "Coffee grounds", "organic", 12)
	require.NoError(t, err)

	beginErr := errors.New("connection refused")
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(beginErr).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBatchCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), beginErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateBatchCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBatchCommand(kernel.NewUUID(), kernel.NewUUID(), "Coffee grounds", "organic", 12)
	require.NoError(t, err)

	addErr := errors.New("insert failed")
	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(addErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBatchCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), addErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
