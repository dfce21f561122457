package commands

import (
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/guard"
)

var ErrRequestDeliveryCommandIsNotConstructed = errors.New(
	"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
)

// RequestDeliveryCommand hands a prepared order over for delivery. Without a
// courier the order becomes claimable; with one it is assigned directly.
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	orderID    kernel.UUID
	courierID  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewRequestDeliveryCommand(
	merchantID kernel.UUID,
	orderID kernel.UUID,
	courierID *kernel.UUID,
) (RequestDeliveryCommand, error) {
	errList := []error{
		requireID("merchantId", merchantID),
		requireID("orderId", orderID),
	}
	if courierID != nil {
		errList = append(errList, requireID("courierId", *courierID))
	}
	if err := errors.Join(errList...); err != nil {
		return RequestDeliveryCommand{}, err
	}

	cmd := RequestDeliveryCommand{
		merchantID: merchantID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}
	if courierID != nil {
		id := *courierID
		cmd.courierID = &id
	}
	return cmd, nil
}

func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

func (c RequestDeliveryCommand) MerchantID() kernel.UUID { return c.merchantID }

func (c RequestDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID is nil when the order should be opened to claims.
func (c RequestDeliveryCommand) CourierID() *kernel.UUID { return c.courierID }
