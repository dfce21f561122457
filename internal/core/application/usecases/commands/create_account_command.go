package commands

import (
	"errors"
	"strings"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand registers a customer, merchant, delivery man or admin.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	contact   account.Contact
	profile   account.Profile

	guard guard.ConstructorGuard
}

func NewCreateAccountCommand(
	accountID kernel.UUID,
	contact account.Contact,
	profile account.Profile,
) (CreateAccountCommand, error) {
	contact.Username = strings.TrimSpace(contact.Username)

	if err := errors.Join(
		accountID.Validate(),
		requireUsername(contact.Username),
		requireProfile(profile),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	return CreateAccountCommand{
		accountID: accountID,
		contact:   contact,
		profile:   profile,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

func (c CreateAccountCommand) AccountID() kernel.UUID { return c.accountID }

func (c CreateAccountCommand) Contact() account.Contact { return c.contact }

func (c CreateAccountCommand) Profile() account.Profile { return c.profile }

func requireUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	return nil
}

func requireProfile(profile account.Profile) error {
	if profile == nil {
		return errs.NewValueIsRequiredError("role")
	}
	return nil
}
