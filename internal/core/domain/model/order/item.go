package order

import (
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a dish as it was when the order was placed. Later menu edits do
// not touch it.
type Item struct {
	dishID kernel.UUID
	name   string
	price  kernel.Money

	isConstructed bool
}

func NewItem(dishID kernel.UUID, name string, price kernel.Money) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if err := price.Validate(); err != nil {
		return Item{}, err
	}
	return Item{
		dishID:        dishID,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) DishID() kernel.UUID { return i.dishID }

func (i Item) Name() string { return i.name }

func (i Item) Price() kernel.Money { return i.price }
