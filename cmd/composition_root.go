package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/broker"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, config.OperationTimeout),
		metrics:    metrics.New(),
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	catalog := catalogrepo.NewGormProductCatalog(c.gormDB)
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), catalog, c.now)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateConfirmPurchaseCommandHandler() commands.ConfirmPurchaseCommandHandler {
	return commands.NewConfirmPurchaseCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	window := order.RefundWindowOf(c.config.RefundWindow)
	return commands.NewRequestRefundCommandHandler(c.orderUoWFactory(), window, c.now)
}

func (c *CompositionRoot) CreateCompleteRefundCommandHandler() commands.CompleteRefundCommandHandler {
	return commands.NewCompleteRefundCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), publisher, c.now)
}

func (c *CompositionRoot) CreateListOrdersByUserQueryHandler() queries.ListOrdersByUserQueryHandler {
	return queries.NewListOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersByProductQueryHandler() queries.ListOrdersByProductQueryHandler {
	return queries.NewListOrdersByProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersByUserPeriodQueryHandler() queries.ListOrdersByUserPeriodQueryHandler {
	return queries.NewListOrdersByUserPeriodQueryHandler(c.gormDB, c.now)
}

func (c *CompositionRoot) CreateListOrdersByUserStatusQueryHandler() queries.ListOrdersByUserStatusQueryHandler {
	return queries.NewListOrdersByUserStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

// CreateEventPublisher connects the broker selected by BROKER.
func (c *CompositionRoot) CreateEventPublisher() (ports.EventPublisher, error) {
	switch c.config.Broker {
	case BrokerKafka:
		publisher, err := broker.NewKafkaPublisher(broker.KafkaConfig{
			Brokers:      c.config.KafkaBrokers,
			Topic:        c.config.KafkaTopic,
			WriteTimeout: c.config.OperationTimeout,
		})
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case BrokerRabbitMQ:
		publisher, err := broker.NewRabbitMQPublisher(broker.RabbitMQConfig{
			URL:      c.config.RabbitMQURL,
			Exchange: c.config.RabbitMQExchange,
		})
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case BrokerLog:
		return broker.NewLogPublisher(c.logger), nil
	default:
		return nil, fmt.Errorf("unknown broker %q", c.config.Broker)
	}
}

func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) *jobs.JobManager {
	relay := c.CreateRelayOutboxCommandHandler(publisher)
	return jobs.NewJobManager(&relay, c.metrics, jobs.OutboxRelayConfig{
		Schedule:  c.config.RelaySchedule,
		BatchSize: c.config.RelayBatchSize,
		Timeout:   c.config.OperationTimeout,
	}, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			CreateOrder:       c.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
			UpdateDelivery:    c.CreateUpdateDeliveryCommandHandler(),
			ConfirmPurchase:   c.CreateConfirmPurchaseCommandHandler(),
			RequestRefund:     c.CreateRequestRefundCommandHandler(),
			CompleteRefund:    c.CreateCompleteRefundCommandHandler(),
		},
		httpin.Queries{
			ListByUser:    c.CreateListOrdersByUserQueryHandler(),
			ListByProduct: c.CreateListOrdersByProductQueryHandler(),
			ListByPeriod:  c.CreateListOrdersByUserPeriodQueryHandler(),
			ListByStatus:  c.CreateListOrdersByUserStatusQueryHandler(),
			GetOrder:      c.CreateGetOrderQueryHandler(),
			GetStatus:     c.CreateGetOrderStatusQueryHandler(),
		},
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(c.CreateServer(), sqlDB, c.metrics, httpin.RouterConfig{
		JWTSecret:        []byte(c.config.JWTSecret),
		OperationTimeout: c.config.OperationTimeout,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
