package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/auditlogrepo"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work and
// the three repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts a PostgreSQL container and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&auditlogrepo.AuditLogDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, audit_logs, notifications").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateOrderNumber(), "Jane Cooper", "jane@example.com", 149.90,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.AuditLogRepository())
	suite.NotNil(uow1.NotificationRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")

	err = uow.Commit(ctx)
	suite.Require().Error(err, "Commit without transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()

	newOrder := suite.newOrder()
	entry, err := audit.NewEntry(
		kernel.NewUUID(), newOrder.ID(), audit.StatusNew,
		newOrder.Status().String(), audit.ActorSystem, "Order created",
	)
	suite.Require().NoError(err)

	orderID := newOrder.ID()
	alert, err := notification.NewNotification(
		kernel.NewUUID(), notification.TypeNewOrder, "New Order Received", "Order placed", &orderID,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.AuditLogRepository().Add(ctx, entry))
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, alert))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	loaded, err := check.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(newOrder))
	suite.Equal(order.AwaitingPayment, loaded.Status())

	timeline, err := check.AuditLogRepository().GetByOrderID(ctx, newOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(timeline, 1)
	suite.Equal(audit.StatusNew, timeline[0].OldStatus())
	suite.Equal("AWAITING_PAYMENT", timeline[0].NewStatus())

	stored, err := check.NotificationRepository().Get(ctx, alert.ID())
	suite.Require().NoError(err)
	suite.False(stored.IsRead())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()

	newOrder := suite.newOrder()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err := check.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdate_CompareAndSwap() {
	ctx := context.Background()
	uow := suite.factory.Create()

	stored := suite.newOrder()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, stored))
	suite.Require().NoError(uow.Commit(ctx))

	// winner moves the order forward
	suite.Require().NoError(stored.ChangeStatus(order.Preparation))
	winner := suite.factory.Create()
	suite.Require().NoError(winner.Begin(ctx))
	suite.Require().NoError(winner.OrderRepository().Update(ctx, stored, order.AwaitingPayment))
	suite.Require().NoError(winner.Commit(ctx))

	// loser still expects the old status and must be rejected
	loser := suite.factory.Create()
	suite.Require().NoError(loser.Begin(ctx))
	err := loser.OrderRepository().Update(ctx, stored, order.AwaitingPayment)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrentUpdate)
	suite.Require().NoError(loser.Rollback(ctx))

	check := suite.factory.Create()
	loaded, err := check.OrderRepository().Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparation, loaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdate_MissingOrderIsNotFound() {
	ctx := context.Background()
	ghost := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.OrderRepository().Update(ctx, ghost, order.AwaitingPayment)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestScannerSelections() {
	ctx := context.Background()
	now := time.Now().UTC()

	// stale awaiting-payment order, fresh awaiting-payment order, stale shipped order
	staleAwaiting, err := order.RestoreOrder(
		kernel.NewUUID(), order.GenerateOrderNumber(), "Old Buyer", "old@example.com", 10,
		order.AwaitingPayment, now.Add(-48*time.Hour), now.Add(-48*time.Hour),
	)
	suite.Require().NoError(err)
	freshAwaiting := suite.newOrder()
	staleShipped, err := order.RestoreOrder(
		kernel.NewUUID(), order.GenerateOrderNumber(), "Slow Carrier", "slow@example.com", 20,
		order.Shipped, now.Add(-120*time.Hour), now.Add(-96*time.Hour),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()
	suite.Require().NoError(repo.Add(ctx, staleAwaiting))
	suite.Require().NoError(repo.Add(ctx, freshAwaiting))
	suite.Require().NoError(repo.Add(ctx, staleShipped))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	overdue, err := check.OrderRepository().
		GetAllInStatusCreatedBefore(ctx, order.AwaitingPayment, now.Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.Equal(staleAwaiting.ID(), overdue[0].ID())

	delayed, err := check.OrderRepository().
		GetAllInStatusNotUpdatedSince(ctx, order.Shipped, now.Add(-72*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(delayed, 1)
	suite.Equal(staleShipped.ID(), delayed[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNotificationDeduplicationAndReadFlags() {
	ctx := context.Background()
	now := time.Now().UTC()
	orderID := kernel.NewUUID()

	recent, err := notification.NewNotification(
		kernel.NewUUID(), notification.TypePaymentOverdue, "Payment Overdue", "still unpaid", &orderID,
	)
	suite.Require().NoError(err)

	old, err := notification.RestoreNotification(
		kernel.NewUUID(), notification.TypeShipmentDelayed, "Shipment Delayed", "stuck in transit",
		&orderID, false, now.Add(-48*time.Hour),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.NotificationRepository()
	suite.Require().NoError(repo.Add(ctx, recent))
	suite.Require().NoError(repo.Add(ctx, old))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create().NotificationRepository()

	exists, err := check.ExistsRecent(ctx, orderID, notification.TypePaymentOverdue, now.Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.True(exists, "recent alert should be found inside the window")

	exists, err = check.ExistsRecent(ctx, orderID, notification.TypeShipmentDelayed, now.Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.False(exists, "old alert is outside the window")

	affected, err := check.MarkAllRead(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), affected)

	affected, err = check.MarkAllRead(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(0), affected, "second sweep has nothing left to flip")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAuditTrail_OrderedOldestFirst() {
	ctx := context.Background()
	now := time.Now().UTC()
	orderID := kernel.NewUUID()

	first, err := audit.RestoreEntry(
		kernel.NewUUID(), orderID, audit.StatusNew, "AWAITING_PAYMENT",
		audit.ActorSystem, "Order created", now.Add(-2*time.Hour),
	)
	suite.Require().NoError(err)
	second, err := audit.RestoreEntry(
		kernel.NewUUID(), orderID, "AWAITING_PAYMENT", "PREPARATION",
		audit.ActorAdmin, "Payment received", now.Add(-1*time.Hour),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.AuditLogRepository()
	// insert newest first to prove ordering comes from the query
	suite.Require().NoError(repo.Add(ctx, second))
	suite.Require().NoError(repo.Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	timeline, err := suite.factory.Create().AuditLogRepository().GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(timeline, 2)
	suite.Equal(first.ID(), timeline[0].ID())
	suite.Equal(second.ID(), timeline[1].ID())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
