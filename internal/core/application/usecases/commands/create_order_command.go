package commands

import (
	"errors"
	"strings"
	"time"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order for a customer at one merchant.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, merchantID,
//	    []kernel.UUID{ramenID, gyozaID}, "12 Harbour St", deliverBy)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UUID
	merchantID       kernel.UUID
	dishIDs          []kernel.UUID
	deliveryLocation string
	deliveryTime     time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the identifiers and that at least one dish is
// requested. The delivery location is free text and may be empty. Whether
// the dishes resolve is decided by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	dishIDs []kernel.UUID,
	deliveryLocation string,
	deliveryTime time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryLocation: strings.TrimSpace(deliveryLocation),
		deliveryTime:     deliveryTime,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		cmd.setCustomerID(customerID),
		cmd.setMerchantID(merchantID),
		cmd.setDishIDs(dishIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

func (c CreateOrderCommand) MerchantID() kernel.UUID { return c.merchantID }

// DishIDs returns the requested dishes in request order, duplicates included.
func (c CreateOrderCommand) DishIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.dishIDs))
	copy(ids, c.dishIDs)
	return ids
}

func (c CreateOrderCommand) DeliveryLocation() string { return c.deliveryLocation }

func (c CreateOrderCommand) DeliveryTime() time.Time { return c.deliveryTime }

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchantId", err)
	}
	c.merchantID = id
	return nil
}

func (c *CreateOrderCommand) setDishIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("dishIds")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("dishIds", err)
		}
	}
	c.dishIDs = make([]kernel.UUID, len(ids))
	copy(c.dishIDs, ids)
	return nil
}
