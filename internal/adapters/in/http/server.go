package http

import (
	"log/slog"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type transitionObserver interface {
	ObserveTransition(operation string, err error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	updateDeliveryHandler    commands.UpdateDeliveryCommandHandler
	confirmPurchaseHandler   commands.ConfirmPurchaseCommandHandler
	requestRefundHandler     commands.RequestRefundCommandHandler
	completeRefundHandler    commands.CompleteRefundCommandHandler

	// Query handlers
	listByUserHandler    queries.ListOrdersByUserQueryHandler
	listByProductHandler queries.ListOrdersByProductQueryHandler
	listByPeriodHandler  queries.ListOrdersByUserPeriodQueryHandler
	listByStatusHandler  queries.ListOrdersByUserStatusQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getStatusHandler     queries.GetOrderStatusQueryHandler

	observer transitionObserver
	logger   *slog.Logger
}

// Commands groups the lifecycle command handlers served over HTTP.
type Commands struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	UpdateDelivery    commands.UpdateDeliveryCommandHandler
	ConfirmPurchase   commands.ConfirmPurchaseCommandHandler
	RequestRefund     commands.RequestRefundCommandHandler
	CompleteRefund    commands.CompleteRefundCommandHandler
}

// Queries groups the read handlers served over HTTP.
type Queries struct {
	ListByUser    queries.ListOrdersByUserQueryHandler
	ListByProduct queries.ListOrdersByProductQueryHandler
	ListByPeriod  queries.ListOrdersByUserPeriodQueryHandler
	ListByStatus  queries.ListOrdersByUserStatusQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	GetStatus     queries.GetOrderStatusQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries, observer transitionObserver, logger *slog.Logger) *Server {
	return &Server{
		createOrderHandler:       cmds.CreateOrder,
		updateOrderStatusHandler: cmds.UpdateOrderStatus,
		updateDeliveryHandler:    cmds.UpdateDelivery,
		confirmPurchaseHandler:   cmds.ConfirmPurchase,
		requestRefundHandler:     cmds.RequestRefund,
		completeRefundHandler:    cmds.CompleteRefund,
		listByUserHandler:        qs.ListByUser,
		listByProductHandler:     qs.ListByProduct,
		listByPeriodHandler:      qs.ListByPeriod,
		listByStatusHandler:      qs.ListByStatus,
		getOrderHandler:          qs.GetOrder,
		getStatusHandler:         qs.GetStatus,
		observer:                 observer,
		logger:                   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	var body servers.NewOrder
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	delivery, err := order.NewDelivery(
		body.Receiver,
		body.ReceiverPhoneNumber,
		deref(body.DeliveryName),
		body.DeliveryAddress,
		body.PostCode,
		deref(body.DeliveryRequest),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor.UserID, kernel.ID(body.ProductId), body.Quantity, delivery)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	s.observer.ObserveTransition("create", err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// ListOrders handles GET /api/v1/orders - the caller's orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	page, err := pageOf(params.Limit, params.Offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersByUserQuery(actor.UserID, page)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.listByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderList(list))
}

// ListOrdersByPeriod handles GET /api/v1/orders/period/{period}.
func (s *Server) ListOrdersByPeriod(ctx echo.Context, period string, params servers.ListOrdersByPeriodParams) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	page, err := pageOf(params.Limit, params.Offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersByUserPeriodQuery(actor.UserID, period, page)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.listByPeriodHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderList(list))
}

// ListOrdersByStatus handles GET /api/v1/orders/status/{status}.
func (s *Server) ListOrdersByStatus(
	ctx echo.Context,
	status servers.OrderStatus,
	params servers.ListOrdersByStatusParams,
) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	target, err := order.ParseStatus(string(status))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := pageOf(params.Limit, params.Offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersByUserStatusQuery(actor.UserID, target, page)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.listByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderList(list))
}

// GetOrder handles GET /api/v1/orders/{orderId} - one of the caller's orders.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	query, err := queries.NewGetOrderQuery(kernel.ID(orderID), actor.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// UpdateDelivery handles PATCH /api/v1/orders/{orderId}/delivery.
func (s *Server) UpdateDelivery(ctx echo.Context, orderID servers.OrderId) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	var body servers.DeliveryChange
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	delivery, err := order.NewDelivery(
		body.Receiver,
		body.ReceiverPhoneNumber,
		deref(body.DeliveryName),
		body.DeliveryAddress,
		body.PostCode,
		deref(body.DeliveryRequest),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryCommand(kernel.ID(orderID), actor.UserID, delivery)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondTransition(ctx, "update_delivery", updated, err)
}

// ConfirmPurchase handles PATCH /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmPurchase(ctx echo.Context, orderID servers.OrderId) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	target, err := s.targetStatus(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmPurchaseCommand(kernel.ID(orderID), actor.UserID, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.confirmPurchaseHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondTransition(ctx, "confirm_purchase", updated, err)
}

// RequestRefund handles PATCH /api/v1/orders/{orderId}/refund.
func (s *Server) RequestRefund(ctx echo.Context, orderID servers.OrderId) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	target, err := s.targetStatus(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRequestRefundCommand(kernel.ID(orderID), actor.UserID, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.requestRefundHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondTransition(ctx, "request_refund", updated, err)
}

// CompleteRefund handles PATCH /api/v1/orders/{orderId}/refund/complete.
func (s *Server) CompleteRefund(ctx echo.Context, orderID servers.OrderId) error {
	actor, ok := actorOf(ctx)
	if !ok {
		return unauthorized(ctx, ErrTokenMissing)
	}

	target, err := s.targetStatus(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompleteRefundCommand(kernel.ID(orderID), actor.UserID, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.completeRefundHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondTransition(ctx, "complete_refund", updated, err)
}

// ListProductOrders handles GET /api/v1/admin/products/{productId}/orders.
func (s *Server) ListProductOrders(ctx echo.Context, productID int64, params servers.ListProductOrdersParams) error {
	if actor, ok := actorOf(ctx); !ok {
		return unauthorized(ctx, ErrTokenMissing)
	} else if !actor.Admin {
		return forbidden(ctx)
	}

	page, err := pageOf(params.Limit, params.Offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersByProductQuery(kernel.ID(productID), page)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.listByProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderList(list))
}

// GetOrderStatus handles GET /api/v1/admin/orders/{orderId}/status.
func (s *Server) GetOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	if actor, ok := actorOf(ctx); !ok {
		return unauthorized(ctx, ErrTokenMissing)
	} else if !actor.Admin {
		return forbidden(ctx)
	}

	query, err := queries.NewGetOrderStatusQuery(kernel.ID(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.getStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.OrderStatusResponse{
		OrderId: result.OrderID.Int64(),
		Status:  servers.OrderStatus(result.Status.String()),
	})
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	if actor, ok := actorOf(ctx); !ok {
		return unauthorized(ctx, ErrTokenMissing)
	} else if !actor.Admin {
		return forbidden(ctx)
	}

	target, err := s.targetStatus(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(orderID), target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondTransition(ctx, "admin_update_status", updated, err)
}

func (s *Server) respondTransition(ctx echo.Context, operation string, updated *order.Order, err error) error {
	s.observer.ObserveTransition(operation, err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// targetStatus reads the {status} body shared by the status transitions.
func (s *Server) targetStatus(ctx echo.Context) (order.Status, error) {
	var body servers.StatusChange
	if err := s.bind(ctx, &body); err != nil {
		return order.Unknown, err
	}
	return order.ParseStatus(string(body.Status))
}

func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return ctx.Validate(body)
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, servers.Error{
		Code:    http.StatusForbidden,
		Message: "administrator role required",
	})
}
