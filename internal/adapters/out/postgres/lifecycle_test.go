package postgres_test

import (
	"testing"
	"time"

	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// lifecycle drives the command handlers against a real store.
type lifecycle struct {
	t        *testing.T
	db       *gorm.DB
	create   commands.CreateOrderCommandHandler
	admin    commands.UpdateOrderStatusCommandHandler
	delivery commands.UpdateDeliveryCommandHandler
	confirm  commands.ConfirmPurchaseCommandHandler
	refund   commands.RequestRefundCommandHandler
	complete commands.CompleteRefundCommandHandler
}

func newLifecycle(t *testing.T) *lifecycle {
	t.Helper()
	db := openSQLite(t)
	require.NoError(t, db.Create(&catalogrepo.ProductDTO{ID: 42, Name: "Widget", Price: 1000, OwnerID: 1, Visible: true}).Error)

	factory := orderUoWFactory{factory: postgres_adapter.NewGormUnitOfWorkFactory(db, 0)}
	clock := func() time.Time { return testNow }
	return &lifecycle{
		t:        t,
		db:       db,
		create:   commands.NewCreateOrderCommandHandler(factory, catalogrepo.NewGormProductCatalog(db), clock),
		admin:    commands.NewUpdateOrderStatusCommandHandler(factory, clock),
		delivery: commands.NewUpdateDeliveryCommandHandler(factory, clock),
		confirm:  commands.NewConfirmPurchaseCommandHandler(factory, clock),
		refund:   commands.NewRequestRefundCommandHandler(factory, nil, clock),
		complete: commands.NewCompleteRefundCommandHandler(factory, clock),
	}
}

func (l *lifecycle) placeOrder(user kernel.ID) *order.Order {
	cmd, err := commands.NewCreateOrderCommand(user, 42, 2, l.newDelivery("1 Main St"))
	require.NoError(l.t, err)
	created, err := l.create.Handle(l.t.Context(), cmd)
	require.NoError(l.t, err)
	return created
}

func (l *lifecycle) setStatus(id kernel.ID, target order.Status) error {
	cmd, err := commands.NewUpdateOrderStatusCommand(id, target)
	require.NoError(l.t, err)
	_, err = l.admin.Handle(l.t.Context(), cmd)
	return err
}

func (l *lifecycle) updateAddress(id, user kernel.ID, address string) error {
	cmd, err := commands.NewUpdateDeliveryCommand(id, user, l.newDelivery(address))
	require.NoError(l.t, err)
	_, err = l.delivery.Handle(l.t.Context(), cmd)
	return err
}

func (l *lifecycle) confirmPurchase(id, user kernel.ID) error {
	cmd, err := commands.NewConfirmPurchaseCommand(id, user, order.PurchaseConfirmed)
	require.NoError(l.t, err)
	_, err = l.confirm.Handle(l.t.Context(), cmd)
	return err
}

func (l *lifecycle) requestRefund(id, user kernel.ID) (*order.Order, error) {
	cmd, err := commands.NewRequestRefundCommand(id, user, order.RefundRequested)
	require.NoError(l.t, err)
	return l.refund.Handle(l.t.Context(), cmd)
}

func (l *lifecycle) completeRefund(id, user kernel.ID) (*order.Order, error) {
	cmd, err := commands.NewCompleteRefundCommand(id, user, order.RefundComplete)
	require.NoError(l.t, err)
	return l.complete.Handle(l.t.Context(), cmd)
}

func (l *lifecycle) newDelivery(address string) order.Delivery {
	d, err := order.NewDelivery("Kim", "010-1234-5678", "Home", address, "04524", "")
	require.NoError(l.t, err)
	return d
}

func TestLifecycle_CreateSnapshotsProduct(t *testing.T) {
	l := newLifecycle(t)
	created := l.placeOrder(7)

	assert.Equal(t, order.PaymentPending, created.Status())
	assert.Equal(t, "Widget", created.Product().Name())
	assert.EqualValues(t, 1000, created.Product().Price())
	assert.Equal(t, 2, created.Quantity())
	assert.Positive(t, created.ID().Int64())
}

func TestLifecycle_SnapshotSurvivesCatalogChanges(t *testing.T) {
	l := newLifecycle(t)
	created := l.placeOrder(7)

	require.NoError(t, l.db.Model(&catalogrepo.ProductDTO{}).
		Where("id = ?", 42).
		Updates(map[string]any{"name": "Widget Pro", "price": 2500}).Error)
	require.NoError(t, l.setStatus(created.ID(), order.PaymentComplete))

	query, err := queries.NewGetOrderQuery(created.ID(), 7)
	require.NoError(t, err)
	details, err := queries.NewGetOrderQueryHandler(l.db).Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Equal(t, order.PaymentComplete, details.Status)
	assert.EqualValues(t, 42, details.ProductID)
	assert.Equal(t, "Widget", details.ProductName)
	assert.EqualValues(t, 1000, details.ProductPrice)

	// new orders pick up the current catalog entry
	next := l.placeOrder(7)
	assert.Equal(t, "Widget Pro", next.Product().Name())
	assert.EqualValues(t, 2500, next.Product().Price())
}

func TestLifecycle_CreateWithUnknownProduct(t *testing.T) {
	l := newLifecycle(t)
	cmd, err := commands.NewCreateOrderCommand(7, 404, 1, l.newDelivery("1 Main St"))
	require.NoError(t, err)

	_, err = l.create.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrProductNotFound)
}

func TestLifecycle_AddressFreezesAfterConfirmation(t *testing.T) {
	l := newLifecycle(t)
	o := l.placeOrder(7)

	require.NoError(t, l.setStatus(o.ID(), order.PaymentComplete))
	require.NoError(t, l.updateAddress(o.ID(), 7, "9 Side St"))

	require.NoError(t, l.confirmPurchase(o.ID(), 7))
	err := l.updateAddress(o.ID(), 7, "10 Other St")
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestLifecycle_RefundIsRequestedOnce(t *testing.T) {
	l := newLifecycle(t)
	o := l.placeOrder(7)

	refunded, err := l.requestRefund(o.ID(), 7)
	require.NoError(t, err)
	assert.Equal(t, order.RefundRequested, refunded.Status())

	_, err = l.requestRefund(o.ID(), 7)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestLifecycle_CompleteRefund(t *testing.T) {
	l := newLifecycle(t)
	requested := l.placeOrder(7)
	pending := l.placeOrder(7)

	_, err := l.requestRefund(requested.ID(), 7)
	require.NoError(t, err)
	completed, err := l.completeRefund(requested.ID(), 7)
	require.NoError(t, err)
	assert.Equal(t, order.RefundComplete, completed.Status())

	_, err = l.completeRefund(pending.ID(), 7)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestLifecycle_AdminCannotLeaveRefundTrack(t *testing.T) {
	l := newLifecycle(t)
	o := l.placeOrder(7)
	_, err := l.requestRefund(o.ID(), 7)
	require.NoError(t, err)

	for _, target := range order.Statuses() {
		err = l.setStatus(o.ID(), target)
		require.ErrorIs(t, err, errs.ErrInvalidTransition, target.String())
	}
}

func TestLifecycle_OtherUsersCannotTouchTheOrder(t *testing.T) {
	l := newLifecycle(t)
	o := l.placeOrder(7)

	require.ErrorIs(t, l.updateAddress(o.ID(), 8, "9 Side St"), errs.ErrObjectNotFound)
	require.ErrorIs(t, l.confirmPurchase(o.ID(), 8), errs.ErrObjectNotFound)
	_, err := l.requestRefund(o.ID(), 8)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	_, err = l.completeRefund(o.ID(), 8)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// a missing order looks exactly the same
	require.ErrorIs(t, l.confirmPurchase(404, 7), errs.ErrObjectNotFound)
}
