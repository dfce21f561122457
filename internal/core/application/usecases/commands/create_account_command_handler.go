package commands

import (
	"context"

	"takeout/internal/core/domain/model/account"
)

type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{uowFactory: uowFactory}
}

// Handle stores the account. A taken username is reported by the repository
// as a ConflictError.
func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.AccountID(), cmd.Contact(), cmd.Profile())
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

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
