package commands

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand edits a dish in place. Orders already placed keep the
// name and price they were placed with.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	dishID     kernel.UUID
	patch      dish.Patch

	guard guard.ConstructorGuard
}

func NewUpdateDishCommand(merchantID, dishID kernel.UUID, patch dish.Patch) (UpdateDishCommand, error) {
	if err := errors.Join(
		requireID("merchantId", merchantID),
		requireID("dishId", dishID),
	); err != nil {
		return UpdateDishCommand{}, err
	}
	return UpdateDishCommand{
		merchantID: merchantID,
		dishID:     dishID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

func (c UpdateDishCommand) MerchantID() kernel.UUID { return c.merchantID }

func (c UpdateDishCommand) DishID() kernel.UUID { return c.dishID }

func (c UpdateDishCommand) Patch() dish.Patch { return c.patch }

type UpdateDishCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateDishCommandHandler(uowFactory MenuUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) error {
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
		return errs.NewForbiddenError("update dish "+cmd.DishID().String(), cmd.MerchantID())
	}

	if err = d.Apply(cmd.Patch()); err != nil {
		return err
	}

	if err = dishRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
