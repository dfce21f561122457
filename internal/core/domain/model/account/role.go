package account

import (
	"fmt"

	"takeout/internal/pkg/errs"
)

// Role tags which profile an account carries.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Merchant
	DeliveryMan
	Admin
)

var roleNames = map[Role]string{
	UnknownRole: "UNKNOWN",
	Customer:    "CUSTOMER",
	Merchant:    "MERCHANT",
	DeliveryMan: "DELIVERY_MAN",
	Admin:       "ADMIN",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return roleNames[UnknownRole]
}

func (r Role) Validate() error {
	if r < Customer || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
