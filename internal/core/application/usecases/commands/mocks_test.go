package commands_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetOwned(ctx context.Context, id kernel.ID, userID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Resolve(ctx context.Context, productID kernel.ID, userID kernel.ID) (order.ProductSnapshot, error) {
	args := m.Called(ctx, productID, userID)
	snapshot, _ := args.Get(0).(order.ProductSnapshot)
	return snapshot, args.Error(1)
}

func newDelivery(t *testing.T, address string) order.Delivery {
	t.Helper()
	d, err := order.NewDelivery("Kim", "010-1234-5678", "Home", address, "04524", "leave at the door")
	require.NoError(t, err)
	return d
}

func newSnapshot(t *testing.T) order.ProductSnapshot {
	t.Helper()
	s, err := order.NewProductSnapshot(42, "Widget", 1000)
	require.NoError(t, err)
	return s
}

// storedOrder returns order 11 owned by user 7, as the repository would load it.
func storedOrder(t *testing.T, status order.Status, confirmedAt *time.Time) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		11,
		7,
		newSnapshot(t),
		2,
		newDelivery(t, "1 Main St"),
		status,
		testNow.Add(-48*time.Hour),
		confirmedAt,
		3,
	)
	require.NoError(t, err)
	return o
}

// expectMutation wires the happy path of a guarded read-modify-write on order 11.
func expectMutation(ctx context.Context, loaded *order.Order, owned bool) (
	*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository,
) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	load := expectLoad(ctx, repo, loaded, owned)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		load,
		repo.On("Update", ctx, loaded).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return factory, uow, repo
}

// expectRejectedMutation wires a mutation that fails after loading: nothing is
// updated or committed, and the transaction is rolled back.
func expectRejectedMutation(ctx context.Context, loaded *order.Order, owned bool) (
	*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository,
) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	load := expectLoad(ctx, repo, loaded, owned)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		load,
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return factory, uow, repo
}

func expectLoad(ctx context.Context, repo *MockOrderRepository, loaded *order.Order, owned bool) *mock.Call {
	if owned {
		return repo.On("GetOwned", ctx, kernel.ID(11), kernel.ID(7)).Return(loaded, nil).Once()
	}
	return repo.On("Get", ctx, kernel.ID(11)).Return(loaded, nil).Once()
}
