package commands

import (
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(courierID, orderID kernel.UUID) (ConfirmDeliveryCommand, error) {
	if err := errors.Join(
		requireID("courierId", courierID),
		requireID("orderId", orderID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	return ConfirmDeliveryCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) CourierID() kernel.UUID { return c.courierID }

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
