package commands

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/guard"
)

var ErrDeleteAccountCommandIsNotConstructed = errors.New(
	"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
)

type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAccountCommand(accountID kernel.UUID) (DeleteAccountCommand, error) {
	if err := requireID("accountId", accountID); err != nil {
		return DeleteAccountCommand{}, err
	}
	return DeleteAccountCommand{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

func (c DeleteAccountCommand) AccountID() kernel.UUID { return c.accountID }

// DeleteAccountCommandHandler removes an account. Orders keep their
// references to it.
type DeleteAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewDeleteAccountCommandHandler(uowFactory AccountUoWFactory) DeleteAccountCommandHandler {
	return DeleteAccountCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteAccountCommandHandler) Handle(ctx context.Context, cmd DeleteAccountCommand) error {
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

	if err := uow.AccountRepository().Delete(ctx, cmd.AccountID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
