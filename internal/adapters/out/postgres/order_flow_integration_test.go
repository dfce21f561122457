package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"takeout/internal/adapters/out/postgres"
	"takeout/internal/adapters/out/postgres/pgtest"
	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type (
	uowFunc      func() commands.UoW
	orderFunc    func() commands.OrderUoW
	dispatchFunc func() commands.DispatchUoW
	accountFunc  func() commands.AccountUoW
	menuFunc     func() commands.MenuUoW
)

func (f uowFunc) Create() commands.UoW              { return f() }
func (f orderFunc) Create() commands.OrderUoW       { return f() }
func (f dispatchFunc) Create() commands.DispatchUoW { return f() }
func (f accountFunc) Create() commands.AccountUoW   { return f() }
func (f menuFunc) Create() commands.MenuUoW         { return f() }

// OrderFlowIntegrationTestSuite drives the command handlers against a real
// database, including concurrent claims racing on the same row.
type OrderFlowIntegrationTestSuite struct {
	suite.Suite
	db        *pgtest.Database
	publisher *recordingPublisher
	factory   *postgres.GormUnitOfWorkFactory

	customer kernel.UUID
	merchant kernel.UUID
	couriers []kernel.UUID
	dishes   []kernel.UUID
}

func (suite *OrderFlowIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background(), postgres.Migrate)
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderFlowIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close(context.Background())
	}
}

func (suite *OrderFlowIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Reset())
	suite.publisher = &recordingPublisher{}
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db.Gorm, suite.publisher, nil)

	suite.customer = suite.createAccount("carol", account.CustomerProfile{})
	suite.merchant = suite.createAccount("pho-house", account.MerchantProfile{MerchantName: "Pho House"})
	suite.couriers = nil
	for _, name := range []string{"dan", "erin", "finn", "gail", "hank", "ivy", "jon", "kim"} {
		suite.couriers = append(suite.couriers,
			suite.createAccount(name, account.DeliveryManProfile{Name: name, Phone: "555-0199"}))
	}

	suite.dishes = []kernel.UUID{
		suite.addDish("Pho", "12.00"),
		suite.addDish("Spring rolls", "6.25"),
	}
}

func (suite *OrderFlowIntegrationTestSuite) orders() orderFunc {
	return func() commands.OrderUoW { return suite.factory.Create() }
}

func (suite *OrderFlowIntegrationTestSuite) dispatch() dispatchFunc {
	return func() commands.DispatchUoW { return suite.factory.Create() }
}

func (suite *OrderFlowIntegrationTestSuite) createAccount(username string, profile account.Profile) kernel.UUID {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(id, account.Contact{Username: username}, profile)
	suite.Require().NoError(err)

	handler := commands.NewCreateAccountCommandHandler(accountFunc(func() commands.AccountUoW {
		return suite.factory.Create()
	}))
	suite.Require().NoError(handler.Handle(context.Background(), cmd))
	return id
}

func (suite *OrderFlowIntegrationTestSuite) addDish(name, price string) kernel.UUID {
	amount, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)

	id := kernel.NewUUID()
	cmd, err := commands.NewAddDishCommand(id, suite.merchant, name, amount, "", "")
	suite.Require().NoError(err)

	handler := commands.NewAddDishCommandHandler(menuFunc(func() commands.MenuUoW {
		return suite.factory.Create()
	}))
	suite.Require().NoError(handler.Handle(context.Background(), cmd))
	return id
}

func (suite *OrderFlowIntegrationTestSuite) placeOrder() kernel.UUID {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, suite.customer, suite.merchant, suite.dishes,
		"40 Rue Oberkampf", time.Now().Add(time.Hour))
	suite.Require().NoError(err)

	handler := commands.NewCreateOrderCommandHandler(uowFunc(func() commands.UoW {
		return suite.factory.Create()
	}))
	suite.Require().NoError(handler.Handle(context.Background(), cmd))
	return id
}

func (suite *OrderFlowIntegrationTestSuite) accept(orderID kernel.UUID) {
	cmd, err := commands.NewAcceptOrderCommand(suite.merchant, orderID)
	suite.Require().NoError(err)
	handler := commands.NewAcceptOrderCommandHandler(suite.dispatch())
	suite.Require().NoError(handler.Handle(context.Background(), cmd))
}

func (suite *OrderFlowIntegrationTestSuite) requestDelivery(orderID kernel.UUID) {
	cmd, err := commands.NewRequestDeliveryCommand(suite.merchant, orderID, nil)
	suite.Require().NoError(err)
	handler := commands.NewRequestDeliveryCommandHandler(suite.dispatch())
	suite.Require().NoError(handler.Handle(context.Background(), cmd))
}

func (suite *OrderFlowIntegrationTestSuite) claim(courierID, orderID kernel.UUID) error {
	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	suite.Require().NoError(err)
	handler := commands.NewClaimOrderCommandHandler(suite.dispatch())
	return handler.Handle(context.Background(), cmd)
}

func (suite *OrderFlowIntegrationTestSuite) confirm(courierID, orderID kernel.UUID) error {
	cmd, err := commands.NewConfirmDeliveryCommand(courierID, orderID)
	suite.Require().NoError(err)
	handler := commands.NewConfirmDeliveryCommandHandler(suite.dispatch())
	return handler.Handle(context.Background(), cmd)
}

func (suite *OrderFlowIntegrationTestSuite) review(orderID kernel.UUID, rating int, comment string) error {
	cmd, err := commands.NewReviewOrderCommand(suite.customer, orderID, rating, comment)
	suite.Require().NoError(err)
	handler := commands.NewReviewOrderCommandHandler(suite.orders())
	return handler.Handle(context.Background(), cmd)
}

func (suite *OrderFlowIntegrationTestSuite) load(orderID kernel.UUID) *order.Order {
	o, err := suite.factory.Create().OrderRepository().Get(context.Background(), orderID)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderFlowIntegrationTestSuite) TestEndToEnd() {
	ctx := context.Background()
	orderID := suite.placeOrder()

	placed := suite.load(orderID)
	suite.Equal(order.PendingConfirmation, placed.Status())
	suite.Equal("18.25", placed.Total().String())
	suite.Nil(placed.Courier())

	suite.accept(orderID)
	suite.requestDelivery(orderID)
	suite.Require().NoError(suite.claim(suite.couriers[0], orderID))

	deliver, err := commands.NewConfirmDeliveryCommand(suite.couriers[0], orderID)
	suite.Require().NoError(err)
	deliverHandler := commands.NewConfirmDeliveryCommandHandler(suite.dispatch())
	suite.Require().NoError(deliverHandler.Handle(ctx, deliver))

	suite.Require().NoError(suite.review(orderID, 5, "hot and fast"))

	done := suite.load(orderID)
	suite.Equal(order.Reviewed, done.Status())
	suite.Require().NotNil(done.Courier())
	suite.Equal(suite.couriers[0], *done.Courier())
	suite.Require().NotNil(done.Review())
	suite.Equal(5, done.Review().Rating())
	suite.Equal("hot and fast", done.Review().Comment())
	suite.Equal("18.25", done.Total().String())

	var transitions []order.Status
	for _, e := range suite.publisher.published() {
		transitions = append(transitions, e.To)
	}
	suite.Equal([]order.Status{
		order.PendingConfirmation,
		order.Preparing,
		order.RequestingDelivery,
		order.Delivering,
		order.Delivered,
		order.Reviewed,
	}, transitions)

	var history int64
	suite.Require().NoError(suite.db.Gorm.Table("order_status_history").
		Where("order_id = ?", orderID.Bytes()).Count(&history).Error)
	suite.Equal(int64(6), history)
}

func (suite *OrderFlowIntegrationTestSuite) TestTwoCouriersRace() {
	orderID := suite.placeOrder()
	suite.accept(orderID)
	suite.requestDelivery(orderID)

	suite.Require().NoError(suite.claim(suite.couriers[0], orderID))

	err := suite.claim(suite.couriers[1], orderID)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	o := suite.load(orderID)
	suite.Equal(order.Delivering, o.Status())
	suite.Equal(suite.couriers[0], *o.Courier())
}

func (suite *OrderFlowIntegrationTestSuite) TestConcurrentClaims_ExactlyOneWins() {
	orderID := suite.placeOrder()
	suite.accept(orderID)
	suite.requestDelivery(orderID)

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]error, len(suite.couriers))
	)
	for i, courierID := range suite.couriers {
		cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
		suite.Require().NoError(err)

		wg.Add(1)
		go func(i int, cmd commands.ClaimOrderCommand) {
			defer wg.Done()
			handler := commands.NewClaimOrderCommandHandler(suite.dispatch())
			<-start
			results[i] = handler.Handle(context.Background(), cmd)
		}(i, cmd)
	}
	close(start)
	wg.Wait()

	winner := -1
	for i, err := range results {
		if err == nil {
			suite.Require().Equal(-1, winner, "more than one claim succeeded")
			winner = i
			continue
		}
		suite.ErrorIs(err, errs.ErrConflict, "courier %d", i)
	}
	suite.Require().NotEqual(-1, winner, "no claim succeeded")

	o := suite.load(orderID)
	suite.Equal(order.Delivering, o.Status())
	suite.Require().NotNil(o.Courier())
	suite.Equal(suite.couriers[winner], *o.Courier())
}

func (suite *OrderFlowIntegrationTestSuite) TestReviewBeforeDelivery() {
	orderID := suite.placeOrder()
	suite.accept(orderID)

	err := suite.review(orderID, 4, "too early")
	suite.Require().ErrorIs(err, errs.ErrInvalidState)

	o := suite.load(orderID)
	suite.Equal(order.Preparing, o.Status())
	suite.Nil(o.Review())
}

func (suite *OrderFlowIntegrationTestSuite) TestAcceptTwice() {
	orderID := suite.placeOrder()
	suite.accept(orderID)

	cmd, err := commands.NewAcceptOrderCommand(suite.merchant, orderID)
	suite.Require().NoError(err)
	handler := commands.NewAcceptOrderCommandHandler(suite.dispatch())
	suite.Require().ErrorIs(handler.Handle(context.Background(), cmd), errs.ErrInvalidState)
}

func (suite *OrderFlowIntegrationTestSuite) TestNamedCourierSkipsClaims() {
	orderID := suite.placeOrder()
	suite.accept(orderID)

	courier := suite.couriers[3]
	cmd, err := commands.NewRequestDeliveryCommand(suite.merchant, orderID, &courier)
	suite.Require().NoError(err)
	handler := commands.NewRequestDeliveryCommandHandler(suite.dispatch())
	suite.Require().NoError(handler.Handle(context.Background(), cmd))

	assigned := suite.load(orderID)
	suite.Equal(order.Delivering, assigned.Status())
	suite.Require().NotNil(assigned.Courier())
	suite.Equal(courier, *assigned.Courier())

	suite.Require().ErrorIs(suite.claim(suite.couriers[0], orderID), errs.ErrConflict)
	suite.Require().ErrorIs(suite.confirm(suite.couriers[0], orderID), errs.ErrForbidden)
	suite.Require().NoError(suite.confirm(courier, orderID))
	suite.Require().NoError(suite.review(orderID, 4, "on time"))

	var transitions []order.Status
	for _, e := range suite.publisher.published() {
		transitions = append(transitions, e.To)
	}
	suite.Equal([]order.Status{
		order.PendingConfirmation,
		order.Preparing,
		order.Delivering,
		order.Delivered,
		order.Reviewed,
	}, transitions)

	done := suite.load(orderID)
	suite.Equal(order.Reviewed, done.Status())
	suite.Equal(courier, *done.Courier())
}

func (suite *OrderFlowIntegrationTestSuite) TestNamedCourierMustExist() {
	orderID := suite.placeOrder()
	suite.accept(orderID)

	stranger := kernel.NewUUID()
	cmd, err := commands.NewRequestDeliveryCommand(suite.merchant, orderID, &stranger)
	suite.Require().NoError(err)
	handler := commands.NewRequestDeliveryCommandHandler(suite.dispatch())

	suite.Require().ErrorIs(handler.Handle(context.Background(), cmd), errs.ErrObjectNotFound)
	suite.Equal(order.Preparing, suite.load(orderID).Status())
}

func (suite *OrderFlowIntegrationTestSuite) TestUnknownActorsAreNotFound() {
	orderID := suite.placeOrder()

	accept, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), orderID)
	suite.Require().NoError(err)
	acceptHandler := commands.NewAcceptOrderCommandHandler(suite.dispatch())
	suite.Require().ErrorIs(acceptHandler.Handle(context.Background(), accept), errs.ErrObjectNotFound)

	// a customer id is not a merchant
	accept, err = commands.NewAcceptOrderCommand(suite.customer, orderID)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(acceptHandler.Handle(context.Background(), accept), errs.ErrObjectNotFound)

	suite.accept(orderID)
	suite.requestDelivery(orderID)
	suite.Require().NoError(suite.claim(suite.couriers[1], orderID))

	suite.Require().ErrorIs(suite.confirm(kernel.NewUUID(), orderID), errs.ErrObjectNotFound)
	suite.Equal(order.Delivering, suite.load(orderID).Status())
}

func (suite *OrderFlowIntegrationTestSuite) TestClaimAfterDeliveryIsInvalidState() {
	orderID := suite.placeOrder()
	suite.accept(orderID)
	suite.requestDelivery(orderID)
	suite.Require().NoError(suite.claim(suite.couriers[0], orderID))
	suite.Require().NoError(suite.confirm(suite.couriers[0], orderID))

	err := suite.claim(suite.couriers[1], orderID)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
	suite.NotErrorIs(err, errs.ErrConflict)
}

func TestOrderFlowIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderFlowIntegrationTestSuite))
}
