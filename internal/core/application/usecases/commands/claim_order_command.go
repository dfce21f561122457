package commands

import (
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand is a courier picking up an order that waits for one.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimOrderCommand(courierID, orderID kernel.UUID) (ClaimOrderCommand, error) {
	if err := errors.Join(
		requireID("courierId", courierID),
		requireID("orderId", orderID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}
	return ClaimOrderCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) CourierID() kernel.UUID { return c.courierID }

func (c ClaimOrderCommand) OrderID() kernel.UUID { return c.orderID }
