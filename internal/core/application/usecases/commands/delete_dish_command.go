package commands

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	dishID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDishCommand(merchantID, dishID kernel.UUID) (DeleteDishCommand, error) {
	if err := errors.Join(
		requireID("merchantId", merchantID),
		requireID("dishId", dishID),
	); err != nil {
		return DeleteDishCommand{}, err
	}
	return DeleteDishCommand{
		merchantID: merchantID,
		dishID:     dishID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) MerchantID() kernel.UUID { return c.merchantID }

func (c DeleteDishCommand) DishID() kernel.UUID { return c.dishID }

// DeleteDishCommandHandler takes a dish off its merchant's menu. Order items
// are snapshots and stay untouched.
type DeleteDishCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewDeleteDishCommandHandler(uowFactory MenuUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
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

	dishRepo := uow.DishRepository()
	d, err := dishRepo.Get(ctx, cmd.DishID())
	if err != nil {
		return err
	}
	if !d.OwnedBy(cmd.MerchantID()) {
		return errs.NewForbiddenError("delete dish "+cmd.DishID().String(), cmd.MerchantID())
	}

	if err = dishRepo.Delete(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
