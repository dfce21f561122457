package commands

import (
	"context"
	"time"

	"takeout/internal/core/domain/model/account"
)

// ConfirmDeliveryCommandHandler lets the assigned courier move a DELIVERING
// order to DELIVERED.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	now        func() time.Time
}

func NewConfirmDeliveryCommandHandler(uowFactory DispatchUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{uowFactory: uowFactory, now: utcNow}
}

// Handle resolves the courier before the order, so an unknown courier is
// ObjectNotFoundError rather than ForbiddenError.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if _, err := uow.AccountRepository().GetByRole(ctx, cmd.CourierID(), account.DeliveryMan); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ConfirmDelivery(cmd.CourierID(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
