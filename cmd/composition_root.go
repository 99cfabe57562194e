package cmd

import (
	"log/slog"
	"time"

	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/audit"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	zones      services.DeliveryZoneTable
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, auditLogger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  audit.NewZapEventPublisher(auditLogger),
		zones:      services.DefaultDeliveryZoneTable(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRegisterConsumerCommandHandler() commands.RegisterConsumerCommandHandler {
	var f commands.ConsumerUoWFactory = FuncConsumerUoWFactory(func() commands.ConsumerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterConsumerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateListConsumerOrdersQueryHandler() queries.ListConsumerOrdersQueryHandler {
	return queries.NewListConsumerOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateListRestaurantOrdersQueryHandler() queries.ListRestaurantOrdersQueryHandler {
	return queries.NewListRestaurantOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateCalculateDeliveryTaxQueryHandler() queries.CalculateDeliveryTaxQueryHandler {
	return queries.NewCalculateDeliveryTaxQueryHandler(c.restaurantRepository(), c.zones)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.restaurantRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateRegisterConsumerCommandHandler(),
		c.CreateRegisterUserCommandHandler(),
		c.CreateCreateRestaurantCommandHandler(),
		c.CreateAddProductCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListConsumerOrdersQueryHandler(),
		c.CreateListRestaurantOrdersQueryHandler(),
		c.CreateCalculateDeliveryTaxQueryHandler(),
		c.CreateListProductsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(staleOrderTTL time.Duration, logger *slog.Logger) (*jobs.JobManager, error) {
	systemActor, err := actor.NewActor(kernel.NewUUID(), "system@foodorder.internal", actor.RoleAdmin, nil, nil)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(
		c.orderRepository(),
		c.CreateUpdateOrderStatusCommandHandler(),
		staleOrderTTL,
		systemActor,
		logger,
	), nil
}

// orderRepository returns a read-side repository bound to the base
// connection, outside any transaction.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) restaurantRepository() ports.RestaurantRepository {
	return c.uowFactory.Create().RestaurantRepository()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncConsumerUoWFactory func() commands.ConsumerUoW

func (f FuncConsumerUoWFactory) Create() commands.ConsumerUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
