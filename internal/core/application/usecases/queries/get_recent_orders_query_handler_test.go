package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func sampleLines(t *testing.T) []order.Line {
	t.Helper()

	biryani, err := order.NewLine(kernel.NewUUID(), "Chicken Biryani", 150, 2)
	require.NoError(t, err)
	sauce, err := order.NewLine(kernel.NewUUID(), "Garlic Sauce", 50, 1)
	require.NoError(t, err)

	return []order.Line{biryani, sauce}
}

func sampleOrder(t *testing.T, name string, placedAt time.Time, status order.Status) *order.Order {
	t.Helper()

	lines := sampleLines(t)
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), name, "01712345678", "", "Dhanmondi",
		lines, 350, status, placedAt, 1,
	)
	require.NoError(t, err)

	return aggregate
}

type GetRecentOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRecentOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetRecentOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetRecentOrdersQuery(50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersNewestFirst() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	oldest := sampleOrder(suite.T(), "Oldest", base, order.Pending)
	middle := sampleOrder(suite.T(), "Middle", base.Add(time.Minute), order.Pending)
	newest := sampleOrder(suite.T(), "Newest", base.Add(2*time.Minute), order.Pending)

	for _, o := range []*order.Order{middle, oldest, newest} {
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	}

	query, err := queries.NewGetRecentOrdersQuery(50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Newest", result[0].CustomerName)
	suite.Equal("Middle", result[1].CustomerName)
	suite.Equal("Oldest", result[2].CustomerName)
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TestHandle_CapsResultsAtLimit() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		o := sampleOrder(suite.T(), "Customer", base.Add(time.Duration(i)*time.Second), order.Pending)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	}

	query, err := queries.NewGetRecentOrdersQuery(3)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
	for i := range len(result) - 1 {
		suite.True(result[i].PlacedAt.After(result[i+1].PlacedAt))
	}
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TestHandle_AttachesLinesInOrder() {
	first, err := order.NewLine(kernel.NewUUID(), "Beef Kala Bhuna", 250, 1)
	suite.Require().NoError(err)
	second, err := order.NewLine(kernel.NewUUID(), "Plain Naan", 30, 2)
	suite.Require().NoError(err)
	third, err := order.NewLine(kernel.NewUUID(), "Borhani", 40, 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "Rahim", "01712345678", "", "Dhanmondi",
		[]order.Line{first, second, third}, 350,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	query, err := queries.NewGetRecentOrdersQuery(50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Lines, 3)
	suite.Equal("Beef Kala Bhuna", result[0].Lines[0].Name)
	suite.Equal("Plain Naan", result[0].Lines[1].Name)
	suite.Equal("Borhani", result[0].Lines[2].Name)
	suite.Equal(2, result[0].Lines[1].Quantity)
	suite.Equal(350, result[0].TotalAmount)
	suite.Equal(order.Pending.String(), result[0].Status)
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetRecentOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetRecentOrdersQuery constructor")
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TestHandle_ConnectionLost_ReturnsStoreUnavailable() {
	ctx := context.Background()

	dsn, err := suite.container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	handler := queries.NewGetRecentOrdersQueryHandler(db)
	query, err := queries.NewGetRecentOrdersQuery(50)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)

	suite.Nil(result)
	suite.Require().ErrorIs(err, errs.ErrStoreUnavailable)
}

func (suite *GetRecentOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	o := sampleOrder(suite.T(), "Rahim", time.Now().UTC(), order.Pending)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	query, err := queries.NewGetRecentOrdersQuery(50)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetRecentOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRecentOrdersQueryHandlerTestSuite))
}
