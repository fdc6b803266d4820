package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
		&outboxrepo.OutboxEventDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, customers, outbox_events").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.CustomerRepository(), "First instance should provide customer repository")
	suite.NotNil(uow1.OutboxRepository(), "First instance should provide outbox repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.CustomerRepository(), "Second instance should provide customer repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_MultiRepositoryTransaction verifies operations across the
// customer, order, and outbox repositories commit atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testCustomer := createTestCustomer()
	testOrder := createTestOrderForCustomer(testCustomer.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Stage the pending events of both aggregates in the same transaction
	err = uow.OutboxRepository().SaveEvents(ctx, testCustomer.PendingEvents())
	suite.Require().NoError(err)
	err = uow.OutboxRepository().SaveEvents(ctx, testOrder.PendingEvents())
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both aggregates persisted correctly
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testCustomer.ID().IsEqual(retrievedOrder.CustomerID()))

	retrievedCustomer, err := newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.True(testCustomer.ID().IsEqual(retrievedCustomer.ID()))

	// Verify the staged events are visible to the relay
	pending, err := newUow.OutboxRepository().GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(pending, 2)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testCustomer := createTestCustomer()
	testOrder := createTestOrderForCustomer(testCustomer.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities and stage events within transaction
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.OutboxRepository().SaveEvents(ctx, testOrder.PendingEvents())
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing persisted after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().Error(err, "Customer should not exist after rollback")

	pending, err := newUow.OutboxRepository().GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending, "No staged events should exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test orders
	order1 := createTestOrder()
	order2 := createTestOrder()

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different orders in each transaction
	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder()

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_OrderLifecycleWorkflow walks an order through its full state
// machine across separate transactions, staging events at every step the way
// the command handlers do.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()

	// Step 1: Register the customer and open a draft order with one line
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testCustomer := createTestCustomer()
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	testOrder := createTestOrderForCustomer(testCustomer.ID())
	price, err := kernel.NewMoney(2500, "USD")
	suite.Require().NoError(err)
	qty, err := kernel.NewQuantity(2)
	suite.Require().NoError(err)
	err = testOrder.AddItem(kernel.NewUUID(), price, qty)
	suite.Require().NoError(err)

	err = uow.OutboxRepository().SaveEvents(ctx, testOrder.PendingEvents())
	suite.Require().NoError(err)
	testOrder.ClearPendingEvents()

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 2: Confirm, ship, and deliver, each in its own transaction
	transitions := []func(o *order.Order) error{
		func(o *order.Order) error { return o.Confirm() },
		func(o *order.Order) error { return o.Ship("TRACK-42") },
		func(o *order.Order) error { return o.MarkDelivered() },
	}

	for _, transition := range transitions {
		stepUow := suite.factory.Create()
		err = stepUow.Begin(ctx)
		suite.Require().NoError(err)

		current, getErr := stepUow.OrderRepository().Get(ctx, testOrder.ID())
		suite.Require().NoError(getErr)

		suite.Require().NoError(transition(current))

		err = stepUow.OutboxRepository().SaveEvents(ctx, current.PendingEvents())
		suite.Require().NoError(err)
		current.ClearPendingEvents()

		err = stepUow.OrderRepository().Update(ctx, current)
		suite.Require().NoError(err)

		err = stepUow.Commit(ctx)
		suite.Require().NoError(err)
	}

	// Verify final state using a new unit of work
	finalUow := suite.factory.Create()
	finalOrder, err := finalUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, finalOrder.Status())
	suite.Equal("TRACK-42", finalOrder.TrackingRef())

	// The delivered order must no longer appear in the unfinished list
	unfinished, err := finalUow.OrderRepository().GetAllUnfinished(ctx)
	suite.Require().NoError(err)
	suite.Empty(unfinished)

	// Every lifecycle event is staged for the relay: created, item added,
	// confirmed, shipped, delivered
	pending, err := finalUow.OutboxRepository().GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(pending, 5)
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial order outside transaction
	existingOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, existingOrder)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add valid entities
	newOrder := createTestOrder()
	newCustomer := createTestCustomer()

	err = uow.OrderRepository().Add(ctx, newOrder)
	suite.Require().NoError(err)
	err = uow.CustomerRepository().Add(ctx, newCustomer)
	suite.Require().NoError(err)

	// Try to add a duplicate order (should fail)
	duplicateOrder, err := order.RestoreOrder(
		existingOrder.ID(), // Same ID as existing order
		existingOrder.CustomerID(),
		existingOrder.Address(),
		existingOrder.Currency(),
		order.Draft,
		nil,
		"",
		"",
		existingOrder.CreatedAt(),
		kernel.InitialAggregateVersion,
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, duplicateOrder)
	suite.Require().Error(err, "Adding duplicate order should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing order should still exist (was added before transaction)
	_, err = newUow.OrderRepository().Get(ctx, existingOrder.ID())
	suite.Require().NoError(err, "Existing order should still exist")

	// New entities should not exist (transaction was rolled back)
	_, err = newUow.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err, "New order should not exist after rollback")

	_, err = newUow.CustomerRepository().Get(ctx, newCustomer.ID())
	suite.Require().Error(err, "New customer should not exist after rollback")
}

// createTestOrder creates a valid draft order for testing purposes.
func createTestOrder() *order.Order {
	return createTestOrderForCustomer(kernel.NewUUID())
}

// createTestOrderForCustomer creates a valid draft order for the given customer.
func createTestOrderForCustomer(customerID kernel.UUID) *order.Order {
	address, _ := kernel.NewAddress("1 Main St", "Springfield")
	testOrder, _ := order.NewOrder(kernel.NewUUID(), customerID, address, "USD")
	return testOrder
}

// createTestCustomer creates a valid customer for testing purposes.
func createTestCustomer() *customer.Customer {
	email, _ := kernel.NewEmail("test@example.com")
	testCustomer, _ := customer.NewCustomer(kernel.NewUUID(), "Test Customer", email)
	return testCustomer
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
