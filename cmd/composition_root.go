package cmd

import (
	"log/slog"

	httpadapter "orderdelivery/internal/adapters/in/http"
	"orderdelivery/internal/adapters/out/kafka"
	"orderdelivery/internal/adapters/out/postgres"
	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/application/usecases/queries"
	"orderdelivery/internal/core/domain/services"
	"orderdelivery/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	producer   *kafka.Producer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
	if config.KafkaEnabled() {
		root.producer = kafka.NewProducer(config.KafkaHost, config.KafkaDeliveryEventsTopic)
	}
	return root
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPlaceOrderCommandHandler(f, services.NewPricingEngine())
	return &h
}

func (c *CompositionRoot) CreateSetDeliveryStatusCommandHandler() *commands.SetDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSetDeliveryStatusCommandHandler(f)
	return &h
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() *commands.RegisterClientCommandHandler {
	h := commands.NewRegisterClientCommandHandler(c.clientUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() *commands.UpdateClientCommandHandler {
	h := commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() *commands.DeleteClientCommandHandler {
	h := commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
	return &h
}

// CreatePublishOutboxCommandHandler returns nil when no broker is configured.
func (c *CompositionRoot) CreatePublishOutboxCommandHandler() *commands.PublishOutboxCommandHandler {
	if c.producer == nil {
		return nil
	}

	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPublishOutboxCommandHandler(f, c.producer)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientQueryHandler() queries.GetClientQueryHandler {
	return queries.NewGetClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		SetDeliveryStatus: c.CreateSetDeliveryStatusCommandHandler(),
		RegisterClient:    c.CreateRegisterClientCommandHandler(),
		UpdateClient:      c.CreateUpdateClientCommandHandler(),
		DeleteClient:      c.CreateDeleteClientCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetDelivery:       c.CreateGetDeliveryQueryHandler(),
		ListDeliveries:    c.CreateListDeliveriesQueryHandler(),
		GetClient:         c.CreateGetClientQueryHandler(),
		ListClients:       c.CreateListClientsQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, c.logger)
}

// CreateJobManager returns nil when no broker is configured; outbox messages
// then stay pending until a relay with a broker runs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreatePublishOutboxCommandHandler()
	if handler == nil {
		return nil
	}
	return jobs.NewJobManager(handler, c.config.OutboxBatchSize, c.logger)
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	if c.producer == nil {
		return nil
	}
	return c.producer.Close()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
