package commands

import (
	"errors"
	"strings"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/guard"
)

var ErrReviewOrderCommandIsNotConstructed = errors.New(
	"ReviewOrderCommand must be created via NewReviewOrderCommand constructor",
)

// ReviewOrderCommand creates or replaces the review of a delivered order.
// The rating range is enforced by the HTTP layer.
type ReviewOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

func NewReviewOrderCommand(
	customerID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	comment string,
) (ReviewOrderCommand, error) {
	if err := errors.Join(
		requireID("customerId", customerID),
		requireID("orderId", orderID),
	); err != nil {
		return ReviewOrderCommand{}, err
	}
	return ReviewOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		rating:     rating,
		comment:    strings.TrimSpace(comment),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderCommandIsNotConstructed)
}

func (c ReviewOrderCommand) CustomerID() kernel.UUID { return c.customerID }

func (c ReviewOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c ReviewOrderCommand) Rating() int { return c.rating }

func (c ReviewOrderCommand) Comment() string { return c.comment }
