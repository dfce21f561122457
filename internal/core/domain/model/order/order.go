package order

import (
	"errors"
	"fmt"
	"time"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned by Validate for an Order that did
	// not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the takeout lifecycle. It owns the status
// machine, the courier assignment and the single attached review.
//
// Invariants:
//   - total equals the exact sum of the item prices and never changes
//   - a courier is present exactly in DELIVERING, DELIVERED and REVIEWED
//   - once set, the courier is never replaced or cleared
//   - a review is present only in REVIEWED
//
// Every persisted mutation is guarded by version: storage only accepts an
// update whose version matches the stored one.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	merchantID       kernel.UUID
	items            []Item
	total            kernel.Money
	deliveryLocation string
	orderTime        time.Time
	deliveryTime     time.Time
	courierID        *kernel.UUID
	status           Status
	review           *Review
	version          int64

	events []StatusChangedEvent

	isConstructed bool
}

// NewOrder places an order for the given snapshot of dishes. The order starts
// in PENDING_CONFIRMATION with its total computed from items.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.50")
//	item, _ := order.NewItem(dishID, "Ramen", price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, merchantID,
//	    []order.Item{item}, "12 Harbour St", deliverBy, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	items []Item,
	deliveryLocation string,
	deliveryTime time.Time,
	orderTime time.Time,
) (*Order, error) {
	o := &Order{
		deliveryLocation: deliveryLocation,
		deliveryTime:     deliveryTime,
		orderTime:        orderTime,
		status:           PendingConfirmation,
		version:          1,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setMerchant(merchantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.raise(Unknown, PendingConfirmation, customerID, orderTime)
	return o, nil
}

// Snapshot carries the stored state of an order for RestoreOrder.
type Snapshot struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	MerchantID       kernel.UUID
	Items            []Item
	Total            kernel.Money
	DeliveryLocation string
	OrderTime        time.Time
	DeliveryTime     time.Time
	CourierID        *kernel.UUID
	Status           Status
	Review           *Review
	Version          int64
}

// RestoreOrder rebuilds an order from storage and re-checks its invariants.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		deliveryLocation: s.DeliveryLocation,
		orderTime:        s.OrderTime,
		deliveryTime:     s.DeliveryTime,
		review:           s.Review,
		version:          s.Version,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.CustomerID),
		o.setMerchant(s.MerchantID),
		o.setItems(s.Items),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if !o.total.IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("stored total %s does not match item sum %s", s.Total, o.total),
		)
	}
	if err := s.Status.ValidateCanHaveCourier(s.CourierID != nil); err != nil {
		return nil, err
	}
	if s.CourierID != nil {
		if err := s.CourierID.Validate(); err != nil {
			return nil, err
		}
	}
	if (s.Review != nil) != (s.Status == Reviewed) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"review",
			fmt.Errorf("%s order cannot have review=%t", s.Status, s.Review != nil),
		)
	}

	o.courierID = s.CourierID
	o.status = s.Status
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) CustomerID() kernel.UUID { return o.customerID }

func (o *Order) MerchantID() kernel.UUID { return o.merchantID }

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money { return o.total }

func (o *Order) DeliveryLocation() string { return o.deliveryLocation }

func (o *Order) OrderTime() time.Time { return o.orderTime }

func (o *Order) DeliveryTime() time.Time { return o.deliveryTime }

func (o *Order) Status() Status { return o.status }

// Courier returns the assigned courier, or nil before assignment.
func (o *Order) Courier() *kernel.UUID { return o.courierID }

// Review returns the attached review, or nil.
func (o *Order) Review() *Review { return o.review }

// Version is the optimistic concurrency token the order was loaded with.
func (o *Order) Version() int64 { return o.version }

// Accept lets the owning merchant start preparing the order.
func (o *Order) Accept(merchantID kernel.UUID, at time.Time) error {
	if !o.merchantID.IsEqual(merchantID) {
		return errs.NewForbiddenError("accept order "+o.id.String(), merchantID)
	}
	next, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.transition(next, merchantID, at)
	return nil
}

// RequestDelivery hands a prepared order over for delivery. With a nil
// courierID the order is opened to claims (REQUESTING_DELIVERY); with a
// courier it is assigned directly (DELIVERING).
func (o *Order) RequestDelivery(merchantID kernel.UUID, courierID *kernel.UUID, at time.Time) error {
	if !o.merchantID.IsEqual(merchantID) {
		return errs.NewForbiddenError("request delivery of order "+o.id.String(), merchantID)
	}

	if courierID == nil {
		next, err := o.status.RequestDelivery()
		if err != nil {
			return err
		}
		o.transition(next, merchantID, at)
		return nil
	}

	if err := courierID.Validate(); err != nil {
		return err
	}
	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	assigned := *courierID
	o.courierID = &assigned
	o.transition(next, merchantID, at)
	return nil
}

// Claim assigns a courier to an order that is waiting for one. An order
// already picked up by another courier yields a ConflictError. Any other
// status than REQUESTING_DELIVERY is an InvalidStateError.
func (o *Order) Claim(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status == Delivering && o.courierID != nil {
		return errs.NewConflictError("order", o.id.String())
	}
	next, err := o.status.Claim()
	if err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewConflictError("order", o.id.String())
	}
	o.courierID = &courierID
	o.transition(next, courierID, at)
	return nil
}

// ConfirmDelivery lets the assigned courier mark the order delivered.
func (o *Order) ConfirmDelivery(courierID kernel.UUID, at time.Time) error {
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewForbiddenError("deliver order "+o.id.String(), courierID)
	}
	o.transition(next, courierID, at)
	return nil
}

// LeaveReview creates or replaces the customer's review. The rating range
// is checked by callers.
func (o *Order) LeaveReview(customerID kernel.UUID, rating int, comment string, at time.Time) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewForbiddenError("review order "+o.id.String(), customerID)
	}
	next, err := o.status.Review()
	if err != nil {
		return err
	}
	o.review = &Review{rating: rating, comment: comment, reviewedAt: at}
	if next != o.status {
		o.transition(next, customerID, at)
	}
	return nil
}

// DomainEvents returns the transitions raised since the order was loaded.
func (o *Order) DomainEvents() []StatusChangedEvent {
	events := make([]StatusChangedEvent, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) transition(next Status, actorID kernel.UUID, at time.Time) {
	prev := o.status
	o.status = next
	o.raise(prev, next, actorID, at)
}

func (o *Order) raise(from, to Status, actorID kernel.UUID, at time.Time) {
	o.events = append(o.events, StatusChangedEvent{
		OrderID:    o.id,
		From:       from,
		To:         to,
		ActorID:    actorID,
		OccurredAt: at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setMerchant(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchant", err)
	}
	o.merchantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.price)
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
