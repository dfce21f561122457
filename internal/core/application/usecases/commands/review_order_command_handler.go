package commands

import (
	"context"
	"time"
)

// ReviewOrderCommandHandler attaches the customer's review. A second review
// of the same order overwrites the first.
type ReviewOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewReviewOrderCommandHandler(uowFactory OrderUoWFactory) ReviewOrderCommandHandler {
	return ReviewOrderCommandHandler{uowFactory: uowFactory, now: utcNow}
}

func (h *ReviewOrderCommandHandler) Handle(ctx context.Context, cmd ReviewOrderCommand) error {
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

	if err = o.LeaveReview(cmd.CustomerID(), cmd.Rating(), cmd.Comment(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
