package commands_test

import (
	"context"
	"io"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByRole(ctx context.Context, id kernel.UUID, role account.Role) (*account.Account, error) {
	args := m.Called(ctx, id, role)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*dish.Dish, error) {
	args := m.Called(ctx, ids)
	d, _ := args.Get(0).([]*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface the handlers accept.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) uow() *MockUoW {
	args := m.Called()
	return args.Get(0).(*MockUoW)
}

type (
	orderFactory    struct{ *MockUoWFactory }
	dispatchFactory struct{ *MockUoWFactory }
	accountFactory  struct{ *MockUoWFactory }
	menuFactory     struct{ *MockUoWFactory }
	fullFactory     struct{ *MockUoWFactory }
)

func (f orderFactory) Create() commands.OrderUoW       { return f.uow() }
func (f dispatchFactory) Create() commands.DispatchUoW { return f.uow() }
func (f accountFactory) Create() commands.AccountUoW   { return f.uow() }
func (f menuFactory) Create() commands.MenuUoW         { return f.uow() }
func (f fullFactory) Create() commands.UoW             { return f.uow() }

// newFactory returns a factory that hands out uow exactly once.
func newFactory(uow *MockUoW) *MockUoWFactory {
	f := new(MockUoWFactory)
	f.On("uow").Return(uow).Once()
	return f
}

type MockImageStorage struct{ mock.Mock }

func (m *MockImageStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}
