package cmd

import (
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	estimator  ports.TravelEstimator
	publisher  ports.OrderEventPublisher
	policy     order.TransitionPolicy
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	estimator ports.TravelEstimator,
	publisher ports.OrderEventPublisher,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		estimator:  estimator,
		publisher:  publisher,
		policy:     order.DefaultTransitionPolicy(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.estimator, c.publisher, c.config.EstimateTimeout)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.policy, c.publisher)
}

func (c *CompositionRoot) CreateReorderCommandHandler() commands.ReorderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReorderCommandHandler(f, c.estimator, c.publisher, c.config.EstimateTimeout)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFailStaleOrdersCommandHandler() commands.FailStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFailStaleOrdersCommandHandler(f, c.policy, c.publisher)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}
