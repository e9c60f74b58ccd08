package batchrepo_test

import (
	"context"
	"testing"
	"time"

	"exchange/internal/adapters/out/postgres/batchrepo"
	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// BatchRepositoryIntegrationTestSuite verifies batch persistence behavior
// against a real PostgreSQL instance.
type BatchRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *batchrepo.GormBatchRepository
	tracker    *MockAggregateTracker
}

func (suite *BatchRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&batchrepo.BatchDTO{}))
}

func (suite *BatchRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE batches").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = batchrepo.NewGormBatchRepository(suite.db, suite.tracker)
}

func (suite *BatchRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BatchRepositoryIntegrationTestSuite) createTestBatch() *batch.Batch {
	b, err := batch.NewBatch(kernel.NewUUID(), kernel.NewUUID(), "Coffee grounds", "organic", 12)
	suite.Require().NoError(err)
	return b
}

func (suite *BatchRepositoryIntegrationTestSuite) TestAdd_ValidBatch_Success() {
	ctx := context.Background()
	testBatch := suite.createTestBatch()

	suite.tracker.On("TrackAggregate", testBatch.ID(), testBatch).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testBatch))

	restored, err := suite.repository.Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(testBatch))
	suite.Equal(batch.Available, restored.Status())
	suite.Equal("Coffee grounds", restored.Title())
	suite.Equal(12, restored.QuantityKg())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BatchRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BatchRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	testBatch := suite.createTestBatch()
	suite.tracker.On("TrackAggregate", testBatch.ID(), testBatch).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testBatch))
	suite.Require().NoError(testBatch.Reserve())
	suite.Require().NoError(suite.repository.Update(ctx, testBatch))

	restored, err := suite.repository.Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.Equal(batch.Reserved, restored.Status())
}

func (suite *BatchRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersByStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	available := suite.createTestBatch()
	suite.Require().NoError(suite.repository.Add(ctx, available))

	reserved := suite.createTestBatch()
	suite.Require().NoError(suite.repository.Add(ctx, reserved))
	suite.Require().NoError(reserved.Reserve())
	suite.Require().NoError(suite.repository.Update(ctx, reserved))

	batches, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(batches, 1)
	suite.True(batches[0].ID().IsEqual(available.ID()))
}

func (suite *BatchRepositoryIntegrationTestSuite) TestUpdateStatus_ConditionalWrite() {
	ctx := context.Background()
	testBatch := suite.createTestBatch()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testBatch))

	err := suite.repository.UpdateStatus(ctx, testBatch.ID(), batch.Available, batch.Reserved)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.Equal(batch.Reserved, restored.Status())
}

func (suite *BatchRepositoryIntegrationTestSuite) TestUpdateStatus_StaleExpectationLoses() {
	ctx := context.Background()
	testBatch := suite.createTestBatch()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testBatch))

	// First writer wins the reservation.
	suite.Require().NoError(
		suite.repository.UpdateStatus(ctx, testBatch.ID(), batch.Available, batch.Reserved),
	)

	// Second writer still believes the batch is available.
	err := suite.repository.UpdateStatus(ctx, testBatch.ID(), batch.Available, batch.Reserved)

	var alreadyResolved *errs.AlreadyResolvedError
	suite.Require().ErrorAs(err, &alreadyResolved)
	suite.Equal("batch", alreadyResolved.EntityType)
	suite.Equal(batch.Reserved.String(), alreadyResolved.Status)
}

func (suite *BatchRepositoryIntegrationTestSuite) TestUpdateStatus_MissingRow() {
	err := suite.repository.UpdateStatus(
		context.Background(), kernel.NewUUID(), batch.Available, batch.Reserved,
	)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestBatchRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BatchRepositoryIntegrationTestSuite))
}
