package commands

import (
	"context"
	"time"

	"takeout/internal/core/domain/model/account"
)

// AcceptOrderCommandHandler moves a PENDING_CONFIRMATION order to PREPARING.
type AcceptOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	now        func() time.Time
}

func NewAcceptOrderCommandHandler(uowFactory DispatchUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory, now: utcNow}
}

// Handle returns ObjectNotFoundError for an unknown merchant or order, ForbiddenError when
// the caller is not the order's merchant and InvalidStateError when the order
// is not awaiting confirmation.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if _, err := uow.AccountRepository().GetByRole(ctx, cmd.MerchantID(), account.Merchant); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Accept(cmd.MerchantID(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
