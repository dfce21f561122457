package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	httpin "takeout/internal/adapters/in/http"
	"takeout/internal/adapters/out/events"
	"takeout/internal/adapters/out/kafka"
	"takeout/internal/adapters/out/postgres"
	"takeout/internal/adapters/out/rabbitmq"
	"takeout/internal/adapters/out/s3"
	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/ports"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	pool       *pgxpool.Pool
	uowFactory *postgres.GormUnitOfWorkFactory
	images     ports.ImageStorage
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	pool *pgxpool.Pool,
	publisher ports.OrderEventPublisher,
	images ports.ImageStorage,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		pool:       pool,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		images:     images,
	}
}

// NewEventPublisher builds the publisher selected by cfg. The returned
// closer releases its connection.
func NewEventPublisher(cfg Config, logger *slog.Logger) (ports.OrderEventPublisher, io.Closer, error) {
	switch cfg.EventsPublisher {
	case PublisherKafka:
		p, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrderEventsTopic)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to kafka: %w", err)
		}
		return p, p, nil
	case PublisherRabbitMQ:
		p, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		return p, p, nil
	default:
		return events.NewLogPublisher(logger), closerFunc(func() error { return nil }), nil
	}
}

func NewImageStorage(ctx context.Context, cfg Config) (*s3.ImageStorage, error) {
	client, err := s3.NewClient(ctx, cfg.S3Region, cfg.S3Endpoint)
	if err != nil {
		return nil, err
	}
	return s3.NewImageStorage(client, cfg.S3Bucket, cfg.ImageBaseURL()), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	return commands.NewCreateAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAccountCommandHandler() commands.DeleteAccountCommandHandler {
	return commands.NewDeleteAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	return commands.NewRequestDeliveryCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateReviewOrderCommandHandler() commands.ReviewOrderCommandHandler {
	return commands.NewReviewOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddDishCommandHandler() commands.AddDishCommandHandler {
	return commands.NewAddDishCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	return commands.NewDeleteDishCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUploadImageCommandHandler() commands.UploadImageCommandHandler {
	return commands.NewUploadImageCommandHandler(c.images)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.pool)
}

func (c *CompositionRoot) CreateListMerchantSalesQueryHandler() queries.ListMerchantSalesQueryHandler {
	return queries.NewListMerchantSalesQueryHandler(c.pool)
}

// HTTPHandlers wires every use case the HTTP interface exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	createAccount := c.CreateCreateAccountCommandHandler()
	deleteAccount := c.CreateDeleteAccountCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	acceptOrder := c.CreateAcceptOrderCommandHandler()
	requestDelivery := c.CreateRequestDeliveryCommandHandler()
	claimOrder := c.CreateClaimOrderCommandHandler()
	confirmDelivery := c.CreateConfirmDeliveryCommandHandler()
	reviewOrder := c.CreateReviewOrderCommandHandler()
	addDish := c.CreateAddDishCommandHandler()
	updateDish := c.CreateUpdateDishCommandHandler()
	deleteDish := c.CreateDeleteDishCommandHandler()
	uploadImage := c.CreateUploadImageCommandHandler()

	return httpin.Handlers{
		CreateAccount:   &createAccount,
		DeleteAccount:   &deleteAccount,
		CreateOrder:     &createOrder,
		AcceptOrder:     &acceptOrder,
		RequestDelivery: &requestDelivery,
		ClaimOrder:      &claimOrder,
		ConfirmDelivery: &confirmDelivery,
		ReviewOrder:     &reviewOrder,
		AddDish:         &addDish,
		UpdateDish:      &updateDish,
		DeleteDish:      &deleteDish,
		UploadImage:     &uploadImage,

		GetAccount:          queries.NewGetAccountQueryHandler(c.pool),
		ListAccounts:        queries.NewListAccountsQueryHandler(c.pool),
		GetMenu:             queries.NewGetMenuQueryHandler(c.pool),
		GetDish:             queries.NewGetDishQueryHandler(c.pool),
		GetOrder:            queries.NewGetOrderQueryHandler(c.pool),
		GetOrderDetails:     queries.NewGetOrderDetailsQueryHandler(c.pool),
		GetOrderReview:      queries.NewGetOrderReviewQueryHandler(c.pool),
		ListCustomerOrders:  queries.NewListCustomerOrdersQueryHandler(c.pool),
		ListPendingOrders:   queries.NewListPendingOrdersQueryHandler(c.pool),
		ListMerchantSales:   c.CreateListMerchantSalesQueryHandler(),
		ListClaimableOrders: queries.NewListClaimableOrdersQueryHandler(c.pool),
		ListDeliveries:      queries.NewListCourierDeliveriesQueryHandler(c.pool),
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
