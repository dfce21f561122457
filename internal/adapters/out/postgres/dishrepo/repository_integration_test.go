package dishrepo_test

import (
	"context"
	"testing"

	"takeout/internal/adapters/out/postgres"
	"takeout/internal/adapters/out/postgres/dishrepo"
	"takeout/internal/adapters/out/postgres/pgtest"
	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type DishRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *pgtest.Database
	repository *dishrepo.GormDishRepository
	merchant   kernel.UUID
}

func (suite *DishRepositoryIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background(), postgres.Migrate)
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = dishrepo.NewGormDishRepository(db.Gorm)
}

func (suite *DishRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Reset())
	suite.merchant = kernel.NewUUID()
}

func (suite *DishRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close(context.Background())
	}
}

func (suite *DishRepositoryIntegrationTestSuite) newDish(name, price string) *dish.Dish {
	m, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	d, err := dish.NewDish(kernel.NewUUID(), suite.merchant, name, m, "house special", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), d))
	return d
}

func (suite *DishRepositoryIntegrationTestSuite) TestUpdate_KeepsExactPrice() {
	ctx := context.Background()
	d := suite.newDish("Laksa", "12.00")

	price, _ := kernel.MoneyFromString("13.35")
	suite.Require().NoError(d.Apply(dish.Patch{Price: &price}))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal("13.35", loaded.Price().String())
	suite.Equal("Laksa", loaded.Name())
}

func (suite *DishRepositoryIntegrationTestSuite) TestFindByIDs_SkipsUnknown() {
	ctx := context.Background()
	a := suite.newDish("Satay", "6.50")
	b := suite.newDish("Roti", "2.00")

	found, err := suite.repository.FindByIDs(ctx, []kernel.UUID{a.ID(), kernel.NewUUID(), b.ID(), a.ID()})
	suite.Require().NoError(err)
	suite.Len(found, 2)

	empty, err := suite.repository.FindByIDs(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *DishRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	d := suite.newDish("Cendol", "4.00")

	suite.Require().NoError(suite.repository.Delete(ctx, d.ID()))

	_, err := suite.repository.Get(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, d.ID()), errs.ErrObjectNotFound)
}

func TestDishRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DishRepositoryIntegrationTestSuite))
}
