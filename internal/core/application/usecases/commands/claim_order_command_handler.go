package commands

import (
	"context"
	"errors"
	"time"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/pkg/errs"
)

// ClaimOrderCommandHandler assigns a courier to a REQUESTING_DELIVERY order.
//
// At most one claim per order succeeds. The order is written with a
// version-checked update, so when several couriers race for the same order
// every claimant except the first to commit gets a ConflictError, either
// from the domain (courier already set) or from the failed version check.
type ClaimOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	now        func() time.Time
}

func NewClaimOrderCommandHandler(uowFactory DispatchUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{uowFactory: uowFactory, now: utcNow}
}

func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	if err = o.Claim(cmd.CourierID(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return errs.NewConflictErrorWithCause("order", cmd.OrderID().String(), err)
		}
		return err
	}

	return uow.Commit(ctx)
}
