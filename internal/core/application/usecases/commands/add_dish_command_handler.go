package commands

import (
	"context"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/dish"
)

type AddDishCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewAddDishCommandHandler(uowFactory MenuUoWFactory) AddDishCommandHandler {
	return AddDishCommandHandler{uowFactory: uowFactory}
}

// Handle returns ObjectNotFoundError when the merchant does not exist.
func (h *AddDishCommandHandler) Handle(ctx context.Context, cmd AddDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := dish.NewDish(
		cmd.DishID(),
		cmd.MerchantID(),
		cmd.Name(),
		cmd.Price(),
		cmd.Description(),
		cmd.ImageURL(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.AccountRepository().GetByRole(ctx, cmd.MerchantID(), account.Merchant); err != nil {
		return err
	}

	if err = uow.DishRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
