package commands_test

import (
	"testing"

	"exchange/internal/core/application/usecases/commands"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/domain/model/rating"
	"exchange/internal/core/domain/services"
	"exchange/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitRatingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	order := newCompletedOrder(t, kernel.NewUUID(), requesterID, providerID)

	cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), order.ID(), requesterID, 5, "great")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("GetAllForOrder", mock.Anything, order.ID()).Return([]*rating.Rating{}, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("Add", mock.Anything, mock.AnythingOfType("*rating.Rating")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory, services.NewRatingEligibility())
	require.NoError(t, h.Handle(ctx, cmd))

	added := ratingRepo.Calls[1].Arguments.Get(1).(*rating.Rating)
	require.True(t, added.RaterID().IsEqual(requesterID))
	require.True(t, added.RatedID().IsEqual(providerID))
	uow.AssertExpectations(t)
}

func TestSubmitRatingCommandHandler_Handle_OrderNotCompleted(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	order := newAcceptedOrder(t, kernel.NewUUID(), requesterID, kernel.NewUUID())

	cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), order.ID(), requesterID, 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	ratingRepo.On("GetAllForOrder", mock.Anything, order.ID()).Return([]*rating.Rating{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory, services.NewRatingEligibility())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotEligible)
	ratingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitRatingCommandHandler_Handle_Outsider(t *testing.T) {
	ctx := t.Context()
	order := newCompletedOrder(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	outsiderID := kernel.NewUUID()

	cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), order.ID(), outsiderID, 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	ratingRepo.On("GetAllForOrder", mock.Anything, order.ID()).Return([]*rating.Rating{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory, services.NewRatingEligibility())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrNotEligible)
}

func TestSubmitRatingCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	order := newCompletedOrder(t, kernel.NewUUID(), requesterID, providerID)

	existing, err := rating.NewRating(kernel.NewUUID(), order.ID(), requesterID, providerID, 3, "")
	require.NoError(t, err)

	cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), order.ID(), requesterID, 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	ratingRepo.On("GetAllForOrder", mock.Anything, order.ID()).Return([]*rating.Rating{existing}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory, services.NewRatingEligibility())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicateRating)
	ratingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitRatingCommandHandler_Handle_CounterpartAlreadyRated(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	order := newCompletedOrder(t, kernel.NewUUID(), requesterID, providerID)

	// The provider already rated; the requester can still rate the provider.
	existing, err := rating.NewRating(kernel.NewUUID(), order.ID(), providerID, requesterID, 4, "")
	require.NoError(t, err)

	cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), order.ID(), requesterID, 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
	uow.On("RatingRepository").Return(ratingRepo).Twice()
	ratingRepo.On("GetAllForOrder", mock.Anything, order.ID()).Return([]*rating.Rating{existing}, nil).Once()
	ratingRepo.On("Add", mock.Anything, mock.AnythingOfType("*rating.Rating")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory, services.NewRatingEligibility())
	require.NoError(t, h.Handle(ctx, cmd))
	ratingRepo.AssertExpectations(t)
}
