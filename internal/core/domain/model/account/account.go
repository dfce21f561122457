// Package account models marketplace participants. An Account is a tagged
// variant: the shared contact fields plus one role-specific Profile.
package account

import (
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Contact holds the fields every role shares.
type Contact struct {
	Username string
	Phone    string
	Email    string
	Address  string
}

type Account struct {
	id      kernel.UUID
	contact Contact
	profile Profile

	isConstructed bool
}

// NewAccount validates the shared fields and the profile. It is used both
// for new accounts and to rebuild stored ones.
func NewAccount(id kernel.UUID, contact Contact, profile Profile) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if contact.Username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if profile == nil {
		return nil, errs.NewValueIsRequiredError("profile")
	}
	if err := profile.validate(); err != nil {
		return nil, err
	}
	return &Account{
		id:            id,
		contact:       contact,
		profile:       profile,
		isConstructed: true,
	}, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID { return a.id }

func (a *Account) Contact() Contact { return a.contact }

func (a *Account) Profile() Profile { return a.profile }

func (a *Account) Role() Role { return a.profile.Role() }

// Is reports whether the account carries the given role.
func (a *Account) Is(role Role) bool {
	return a.profile.Role() == role
}
