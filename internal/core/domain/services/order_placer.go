package services

import (
	"errors"
	"time"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"
)

// ErrNoDishResolved is the cause reported when none of the requested dish
// IDs is on the merchant's menu.
var ErrNoDishResolved = errors.New("none of the requested dishes is on the merchant's menu")

// PlaceOrderRequest is the input to OrderPlacer.Place.
type PlaceOrderRequest struct {
	OrderID          kernel.UUID
	Customer         *account.Account
	Merchant         *account.Account
	DishIDs          []kernel.UUID
	Menu             []*dish.Dish
	DeliveryLocation string
	DeliveryTime     time.Time
	Now              time.Time
}

// OrderPlacer turns a customer's dish selection into a new order.
//
// Requested IDs that are unknown or belong to another merchant are dropped
// without error. Repeated IDs produce one item each. The order is rejected
// only when nothing resolves.
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

func (OrderPlacer) Place(req PlaceOrderRequest) (*order.Order, error) {
	if req.Customer == nil {
		return nil, errs.NewValueIsRequiredError("customer")
	}
	if req.Merchant == nil {
		return nil, errs.NewValueIsRequiredError("merchant")
	}
	if !req.Customer.Is(account.Customer) {
		return nil, errs.NewObjectNotFoundError("customer", req.Customer.ID().String())
	}
	if !req.Merchant.Is(account.Merchant) {
		return nil, errs.NewObjectNotFoundError("merchant", req.Merchant.ID().String())
	}

	menu := make(map[kernel.UUID]*dish.Dish, len(req.Menu))
	for _, d := range req.Menu {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if d.OwnedBy(req.Merchant.ID()) {
			menu[d.ID()] = d
		}
	}

	items := make([]order.Item, 0, len(req.DishIDs))
	for _, id := range req.DishIDs {
		d, ok := menu[id]
		if !ok {
			continue
		}
		item, err := order.NewItem(d.ID(), d.Name(), d.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("dishes", ErrNoDishResolved)
	}

	return order.NewOrder(
		req.OrderID,
		req.Customer.ID(),
		req.Merchant.ID(),
		items,
		req.DeliveryLocation,
		req.DeliveryTime,
		req.Now,
	)
}
