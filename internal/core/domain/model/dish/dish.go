// Package dish models menu entries. A dish belongs to exactly one merchant;
// orders copy its name and price at placement time.
package dish

import (
	"errors"
	"fmt"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

type Dish struct {
	id          kernel.UUID
	merchantID  kernel.UUID
	name        string
	price       kernel.Money
	description string
	imageURL    string

	isConstructed bool
}

func NewDish(
	id kernel.UUID,
	merchantID kernel.UUID,
	name string,
	price kernel.Money,
	description string,
	imageURL string,
) (*Dish, error) {
	d := &Dish{
		description:   description,
		imageURL:      imageURL,
		isConstructed: true,
	}
	if err := errors.Join(
		id.Validate(),
		merchantID.Validate(),
		d.setName(name),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}
	d.id = id
	d.merchantID = merchantID
	return d, nil
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.UUID { return d.id }

func (d *Dish) MerchantID() kernel.UUID { return d.merchantID }

func (d *Dish) Name() string { return d.name }

func (d *Dish) Price() kernel.Money { return d.price }

func (d *Dish) Description() string { return d.description }

func (d *Dish) ImageURL() string { return d.imageURL }

// OwnedBy reports whether the dish is on the given merchant's menu.
func (d *Dish) OwnedBy(merchantID kernel.UUID) bool {
	return d.merchantID.IsEqual(merchantID)
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Price       *kernel.Money
	Description *string
	ImageURL    *string
}

// Apply updates the dish in place from p.
func (d *Dish) Apply(p Patch) error {
	if p.Name != nil {
		if err := d.setName(*p.Name); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := d.setPrice(*p.Price); err != nil {
			return err
		}
	}
	if p.Description != nil {
		d.description = *p.Description
	}
	if p.ImageURL != nil {
		d.imageURL = *p.ImageURL
	}
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}
	d.price = price
	return nil
}
