package commands

import (
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a merchant confirming one of its orders.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(merchantID, orderID kernel.UUID) (AcceptOrderCommand, error) {
	if err := errors.Join(
		requireID("merchantId", merchantID),
		requireID("orderId", orderID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}
	return AcceptOrderCommand{
		merchantID: merchantID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) MerchantID() kernel.UUID { return c.merchantID }

func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
