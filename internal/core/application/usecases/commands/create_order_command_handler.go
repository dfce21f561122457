package commands

import (
	"context"
	"time"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/services"
)

// CreateOrderCommandHandler resolves the customer, the merchant and the
// requested dishes, then stores a PENDING_CONFIRMATION order with a snapshot
// of the resolved dishes.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	placer     services.OrderPlacer
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
		now:        utcNow,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accounts := uow.AccountRepository()
	customer, err := accounts.GetByRole(ctx, cmd.CustomerID(), account.Customer)
	if err != nil {
		return err
	}
	merchant, err := accounts.GetByRole(ctx, cmd.MerchantID(), account.Merchant)
	if err != nil {
		return err
	}

	menu, err := uow.DishRepository().FindByIDs(ctx, cmd.DishIDs())
	if err != nil {
		return err
	}

	placed, err := h.placer.Place(services.PlaceOrderRequest{
		OrderID:          cmd.OrderID(),
		Customer:         customer,
		Merchant:         merchant,
		DishIDs:          cmd.DishIDs(),
		Menu:             menu,
		DeliveryLocation: cmd.DeliveryLocation(),
		DeliveryTime:     cmd.DeliveryTime(),
		Now:              h.now(),
	})
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
