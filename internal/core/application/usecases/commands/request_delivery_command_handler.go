package commands

import (
	"context"
	"time"

	"takeout/internal/core/domain/model/account"
)

// RequestDeliveryCommandHandler moves a PREPARING order to
// REQUESTING_DELIVERY, or straight to DELIVERING when the merchant names a
// courier.
type RequestDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	now        func() time.Time
}

func NewRequestDeliveryCommandHandler(uowFactory DispatchUoWFactory) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{uowFactory: uowFactory, now: utcNow}
}

func (h *RequestDeliveryCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if courierID := cmd.CourierID(); courierID != nil {
		if _, err = uow.AccountRepository().GetByRole(ctx, *courierID, account.DeliveryMan); err != nil {
			return err
		}
	}

	if err = o.RequestDelivery(cmd.MerchantID(), cmd.CourierID(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
