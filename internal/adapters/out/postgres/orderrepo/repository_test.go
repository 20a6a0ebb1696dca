package orderrepo_test

import (
	"strings"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate *order.Order) {
	m.Called(aggregate)
}

// OrderRepositoryTestSuite runs the repository against an in-memory SQLite
// database. Row locking is covered by the postgres integration suite.
type OrderRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(suite.T().Name())
	db, err := postgres.OpenSQLite("file:"+name+"?mode=memory&cache=shared", logger.Silent)
	suite.Require().NoError(err)
	suite.Require().NoError(postgres.Migrate(db))
	suite.Require().NoError(db.Exec("DELETE FROM orders").Error)
	suite.db = db

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(db, suite.tracker)
}

func (suite *OrderRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *OrderRepositoryTestSuite) TestAdd_AssignsIDAndTracks() {
	ctx := suite.T().Context()
	first := suite.newOrder(7)
	second := suite.newOrder(7)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("*order.Order")).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Positive(first.ID().Int64())
	suite.Greater(second.ID().Int64(), first.ID().Int64())
	suite.assertOrderCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryTestSuite) TestAdd_UnconstructedOrder() {
	err := suite.repository.Add(suite.T().Context(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *OrderRepositoryTestSuite) TestGet_RoundTripsEveryField() {
	ctx := suite.T().Context()
	suite.tracker.On("TrackAggregate", mock.Anything)
	created := suite.newOrder(7)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	loaded, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.Equal(created.ID(), loaded.ID())
	suite.Equal(created.UserID(), loaded.UserID())
	suite.Equal(created.Product().ProductID(), loaded.Product().ProductID())
	suite.Equal("Widget", loaded.Product().Name())
	suite.EqualValues(1000, loaded.Product().Price())
	suite.Equal(2, loaded.Quantity())
	suite.Equal(order.PaymentPending, loaded.Status())
	suite.Equal("1 Main St", loaded.Delivery().Address())
	suite.Equal("leave at the door", loaded.Delivery().Request())
	suite.True(testNow.Equal(loaded.CreatedAt()))
	suite.Nil(loaded.ConfirmedAt())
	suite.Equal(1, loaded.Version())
	suite.Empty(loaded.Events())
}

func (suite *OrderRepositoryTestSuite) TestGet_NonExistentOrder() {
	_, err := suite.repository.Get(suite.T().Context(), 404)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGet_InvalidID() {
	_, err := suite.repository.Get(suite.T().Context(), 0)
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *OrderRepositoryTestSuite) TestGetOwned_ForeignOrderIsNotFound() {
	ctx := suite.T().Context()
	suite.tracker.On("TrackAggregate", mock.Anything)
	created := suite.newOrder(7)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	owned, err := suite.repository.GetOwned(ctx, created.ID(), 7)
	suite.Require().NoError(err)
	suite.Equal(created.ID(), owned.ID())

	_, err = suite.repository.GetOwned(ctx, created.ID(), 8)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsChangesAndBumpsVersion() {
	ctx := suite.T().Context()
	suite.tracker.On("TrackAggregate", mock.Anything)
	created := suite.newOrder(7)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	loaded, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	delivery, err := order.NewDelivery("Lee", "010-0000-0000", "", "9 Side St", "12345", "")
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeDelivery(delivery, testNow))
	suite.Require().NoError(loaded.ConfirmPurchase(testNow.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))
	suite.Equal(2, loaded.Version())

	reloaded, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PurchaseConfirmed, reloaded.Status())
	suite.Equal("9 Side St", reloaded.Delivery().Address())
	suite.Empty(reloaded.Delivery().Request())
	suite.Require().NotNil(reloaded.ConfirmedAt())
	suite.True(testNow.Add(time.Hour).Equal(*reloaded.ConfirmedAt()))
	suite.Equal(2, reloaded.Version())
	suite.Equal("Widget", reloaded.Product().Name())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_StaleVersionIsRejected() {
	ctx := suite.T().Context()
	suite.tracker.On("TrackAggregate", mock.Anything)
	created := suite.newOrder(7)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	first, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ConfirmPurchase(testNow))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.RequestRefund(testNow, nil))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	reloaded, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PurchaseConfirmed, reloaded.Status())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_NonExistentOrder() {
	ctx := suite.T().Context()
	ghost := suite.restoreOrder(999)

	err := suite.repository.Update(ctx, ghost)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *OrderRepositoryTestSuite) newOrder(userID kernel.ID) *order.Order {
	product, err := order.NewProductSnapshot(42, "Widget", 1000)
	suite.Require().NoError(err)
	delivery, err := order.NewDelivery("Kim", "010-1234-5678", "Home", "1 Main St", "04524", "leave at the door")
	suite.Require().NoError(err)
	o, err := order.NewOrder(userID, product, 2, delivery, testNow)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) restoreOrder(id kernel.ID) *order.Order {
	product, err := order.NewProductSnapshot(42, "Widget", 1000)
	suite.Require().NoError(err)
	delivery, err := order.NewDelivery("Kim", "010-1234-5678", "Home", "1 Main St", "04524", "")
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(id, 7, product, 2, delivery, order.PaymentPending, testNow, nil, 1)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
