package commands_test

import (
	"context"
	"time"

	"exchange/internal/core/application/usecases/commands"
	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/domain/model/rating"
	"exchange/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBatchRepository) Update(ctx context.Context, aggregate *batch.Batch) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

func (m *MockBatchRepository) GetAllAvailable(ctx context.Context) ([]*batch.Batch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*batch.Batch), args.Error(1)
}

func (m *MockBatchRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, expected, target batch.Status,
) error {
	args := m.Called(ctx, id, expected, target)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *exchange.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *exchange.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*exchange.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exchange.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForActor(
	ctx context.Context, actorID kernel.UUID,
) ([]*exchange.Order, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exchange.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingOlderThan(
	ctx context.Context, cutoff time.Time,
) ([]*exchange.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exchange.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPendingCountForItem(
	ctx context.Context, itemID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, expected, target exchange.Status,
) error {
	args := m.Called(ctx, id, expected, target)
	return args.Error(0)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRatingRepository) Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*rating.Rating, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByOrderAndRater(
	ctx context.Context, orderID, raterID kernel.UUID,
) (*rating.Rating, error) {
	args := m.Called(ctx, orderID, raterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) Update(ctx context.Context, aggregate *rating.Rating) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, aggregate *audit.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAuditRepository) GetAllForEntity(
	ctx context.Context, entityID kernel.UUID,
) ([]*audit.Entry, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface the handlers use,
// so one mock serves the whole package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockBatchUoWFactory struct{ mock.Mock }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW {
	args := m.Called()
	return args.Get(0).(commands.BatchUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockExchangeUoWFactory struct{ mock.Mock }

func (m *MockExchangeUoWFactory) Create() commands.ExchangeUoW {
	args := m.Called()
	return args.Get(0).(commands.ExchangeUoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

type MockOverrideUoWFactory struct{ mock.Mock }

func (m *MockOverrideUoWFactory) Create() commands.OverrideUoW {
	args := m.Called()
	return args.Get(0).(commands.OverrideUoW)
}
