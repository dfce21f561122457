package order

import (
	"fmt"

	"takeout/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	PENDING_CONFIRMATION ──accept──> PREPARING ──request──> REQUESTING_DELIVERY ──claim──┐
//	                                     │                                               v
//	                                     └──────────dispatch to named courier──────> DELIVERING
//	                                                                                     │
//	                        REVIEWED <──review── DELIVERED <──────────deliver────────────┘
//	                           └──┘ review again
//
// Pending is a legacy state: it is valid when read back from storage but no
// transition produces it or leaves it.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	PendingConfirmation
	Preparing
	RequestingDelivery
	Delivering
	Delivered
	Reviewed
)

var statusNames = map[Status]string{
	Unknown:             "UNKNOWN",
	Pending:             "PENDING",
	PendingConfirmation: "PENDING_CONFIRMATION",
	Preparing:           "PREPARING",
	RequestingDelivery:  "REQUESTING_DELIVERY",
	Delivering:          "DELIVERING",
	Delivered:           "DELIVERED",
	Reviewed:            "REVIEWED",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Pending,
		PendingConfirmation,
		Preparing,
		RequestingDelivery,
		Delivering,
		Delivered,
		Reviewed,
	}
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if statusNames[status] == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Reviewed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// HasCourier reports whether an order in this status must carry a courier.
func (s Status) HasCourier() bool {
	return s == Delivering || s == Delivered || s == Reviewed
}

// ValidateCanHaveCourier checks that courier presence matches the status:
// exactly DELIVERING, DELIVERED and REVIEWED orders have one.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.HasCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}
	if !courier && s.HasCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}
	return nil
}

// Accept moves PENDING_CONFIRMATION to PREPARING.
func (s Status) Accept() (Status, error) {
	if s != PendingConfirmation {
		return Unknown, s.invalid("accept")
	}
	return Preparing, nil
}

// RequestDelivery moves PREPARING to REQUESTING_DELIVERY, opening the order
// to claims by any courier.
func (s Status) RequestDelivery() (Status, error) {
	if s != Preparing {
		return Unknown, s.invalid("request delivery")
	}
	return RequestingDelivery, nil
}

// Dispatch moves PREPARING straight to DELIVERING when the merchant names the
// courier.
func (s Status) Dispatch() (Status, error) {
	if s != Preparing {
		return Unknown, s.invalid("dispatch")
	}
	return Delivering, nil
}

// Claim moves REQUESTING_DELIVERY to DELIVERING.
func (s Status) Claim() (Status, error) {
	if s != RequestingDelivery {
		return Unknown, s.invalid("be claimed")
	}
	return Delivering, nil
}

// Deliver moves DELIVERING to DELIVERED.
func (s Status) Deliver() (Status, error) {
	if s != Delivering {
		return Unknown, s.invalid("be delivered")
	}
	return Delivered, nil
}

// Review moves DELIVERED to REVIEWED and keeps REVIEWED as is.
func (s Status) Review() (Status, error) {
	if s != Delivered && s != Reviewed {
		return Unknown, s.invalid("be reviewed")
	}
	return Reviewed, nil
}

func (s Status) invalid(action string) error {
	return errs.NewInvalidStateError("order", s.String(), action)
}
