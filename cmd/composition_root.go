package cmd

import (
	"time"

	httpadapter "jibekjoly/internal/adapters/in/http"
	"jibekjoly/internal/adapters/out/kafka"
	"jibekjoly/internal/adapters/out/postgres"
	"jibekjoly/internal/adapters/out/postgres/identityrepo"
	"jibekjoly/internal/core/application/usecases/commands"
	"jibekjoly/internal/core/application/usecases/queries"
	"jibekjoly/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
	clock      commands.Clock
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		clock:      time.Now,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher *kafka.Publisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher, c.clock)
}

func (c *CompositionRoot) CreateGetActorQueryHandler() queries.GetActorQueryHandler {
	return queries.NewGetActorQueryHandler(identityrepo.NewGormIdentityRepository(c.gormDB))
}

// CreateHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrder:         c.CreateUpdateOrderCommandHandler(),
		UpdateProfile:       c.CreateUpdateProfileCommandHandler(),
		ListOrders:          queries.NewListOrdersQueryHandler(c.gormDB),
		ListAvailableOrders: queries.NewListAvailableOrdersQueryHandler(c.gormDB),
		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrderChat:        queries.NewGetOrderChatQueryHandler(c.gormDB),
		ListChats:           queries.NewListChatsQueryHandler(c.gormDB),
		ListStatuses:        queries.NewListStatusesQueryHandler(c.gormDB),
		ListCities:          queries.NewListCitiesQueryHandler(c.gormDB),
		ListPackageSizes:    queries.NewListPackageSizesQueryHandler(c.gormDB),
	}
}

// CreateJobs returns the background jobs and a release func for their resources.
// Without Kafka brokers no jobs run.
func (c *CompositionRoot) CreateJobs() (*jobs.JobManager, func()) {
	brokers := c.configs.KafkaBrokersSlice()
	if len(brokers) == 0 {
		c.logger.Warn("KAFKA_BROKERS is empty, outbox relay is disabled")
		return jobs.NewJobManager(), func() {}
	}

	publisher := kafka.NewPublisher(brokers, c.configs.KafkaOrderChangedTopic, c.logger)
	relay := jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(publisher), c.configs.OutboxBatchSize, c.logger)

	return jobs.NewJobManager(relay), func() {
		if err := publisher.Close(); err != nil {
			c.logger.Error("close kafka publisher", zap.Error(err))
		}
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
