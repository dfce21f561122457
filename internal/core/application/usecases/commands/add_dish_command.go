package commands

import (
	"errors"
	"strings"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

var ErrAddDishCommandIsNotConstructed = errors.New(
	"AddDishCommand must be created via NewAddDishCommand constructor",
)

// AddDishCommand puts a new dish on a merchant's menu.
type AddDishCommand struct { //nolint:recvcheck //using for validation
	dishID      kernel.UUID
	merchantID  kernel.UUID
	name        string
	price       kernel.Money
	description string
	imageURL    string

	guard guard.ConstructorGuard
}

func NewAddDishCommand(
	dishID kernel.UUID,
	merchantID kernel.UUID,
	name string,
	price kernel.Money,
	description string,
	imageURL string,
) (AddDishCommand, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(
		dishID.Validate(),
		requireID("merchantId", merchantID),
		nameErr,
		price.Validate(),
	); err != nil {
		return AddDishCommand{}, err
	}

	return AddDishCommand{
		dishID:      dishID,
		merchantID:  merchantID,
		name:        name,
		price:       price,
		description: description,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddDishCommand) Validate() error {
	return c.guard.Validate(ErrAddDishCommandIsNotConstructed)
}

func (c AddDishCommand) DishID() kernel.UUID { return c.dishID }

func (c AddDishCommand) MerchantID() kernel.UUID { return c.merchantID }

func (c AddDishCommand) Name() string { return c.name }

func (c AddDishCommand) Price() kernel.Money { return c.price }

func (c AddDishCommand) Description() string { return c.description }

func (c AddDishCommand) ImageURL() string { return c.imageURL }
