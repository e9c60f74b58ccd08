package postgres_test

import (
	"context"
	"testing"
	"time"

	"exchange/internal/adapters/out/postgres"
	"exchange/internal/adapters/out/postgres/auditrepo"
	"exchange/internal/adapters/out/postgres/batchrepo"
	"exchange/internal/adapters/out/postgres/exchangerepo"
	"exchange/internal/adapters/out/postgres/ratingrepo"
	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the order write and the item
// write share one transaction: both land or neither does.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&batchrepo.BatchDTO{},
		&exchangerepo.OrderDTO{},
		&ratingrepo.RatingDTO{},
		&auditrepo.EntryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE batches, orders, ratings, audit_entries").Error,
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedExchange() (*batch.Batch, *exchange.Order) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	item, err := batch.NewBatch(kernel.NewUUID(), kernel.NewUUID(), "Citrus peel", "organic", 8)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.BatchRepository().Add(ctx, item))

	order, err := exchange.NewOrder(
		kernel.NewUUID(), item.ID(), exchange.ItemKindBatch, kernel.NewUUID(), item.OwnerID(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, order))

	suite.Require().NoError(uow.Commit(ctx))
	return item, order
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_AppliesBothWrites() {
	ctx := context.Background()
	item, order := suite.seedExchange()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(order.Accept(order.ProviderID()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, order))
	suite.Require().NoError(
		uow.BatchRepository().UpdateStatus(ctx, item.ID(), batch.Available, batch.Reserved),
	)
	suite.Require().NoError(uow.Commit(ctx))

	checkUow := suite.factory.Create()
	restoredOrder, err := checkUow.OrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(exchange.Accepted, restoredOrder.Status())

	restoredBatch, err := checkUow.BatchRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(batch.Reserved, restoredBatch.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBothWrites() {
	ctx := context.Background()
	item, order := suite.seedExchange()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(order.Accept(order.ProviderID()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, order))
	suite.Require().NoError(
		uow.BatchRepository().UpdateStatus(ctx, item.ID(), batch.Available, batch.Reserved),
	)
	suite.Require().NoError(uow.Rollback(ctx))

	checkUow := suite.factory.Create()
	restoredOrder, err := checkUow.OrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(exchange.Pending, restoredOrder.Status())

	restoredBatch, err := checkUow.BatchRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(batch.Available, restoredBatch.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBeginFails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
