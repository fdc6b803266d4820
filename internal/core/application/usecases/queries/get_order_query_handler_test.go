package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency when
// seeding read-model tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OrderWithItems_ReturnsFullReadModel() {
	testOrder := suite.createDraftOrder()
	suite.addItem(testOrder, 1000, 2)
	suite.addItem(testOrder, 2500, 1)
	suite.saveOrder(testOrder)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(result.ID))
	suite.True(testOrder.CustomerID().IsEqual(result.CustomerID))
	suite.Equal("1 Main St", result.Street)
	suite.Equal("Springfield", result.City)
	suite.Equal("USD", result.Currency)
	suite.Equal("Draft", result.Status)
	suite.Len(result.Items, 2)
	// 1000*2 + 2500*1
	suite.Equal(int64(4500), result.TotalAmount)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ShippedOrder_ExposesTrackingRef() {
	testOrder := suite.createDraftOrder()
	suite.addItem(testOrder, 1000, 1)
	suite.Require().NoError(testOrder.Confirm())
	suite.Require().NoError(testOrder.Ship("TRACK-99"))
	suite.saveOrder(testOrder)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Shipped", result.Status)
	suite.Equal("TRACK-99", result.TrackingRef)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *GetOrderQueryHandlerTestSuite) createDraftOrder() *order.Order {
	address, err := kernel.NewAddress("1 Main St", "Springfield")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, "USD")
	suite.Require().NoError(err)

	return testOrder
}

func (suite *GetOrderQueryHandlerTestSuite) addItem(testOrder *order.Order, amount int64, qty int) {
	price, err := kernel.NewMoney(amount, "USD")
	suite.Require().NoError(err)
	quantity, err := kernel.NewQuantity(qty)
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.AddItem(kernel.NewUUID(), price, quantity))
}

func (suite *GetOrderQueryHandlerTestSuite) saveOrder(testOrder *order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
