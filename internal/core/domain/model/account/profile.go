package account

import "takeout/internal/pkg/errs"

// Profile is the role-specific part of an account. Exactly one concrete
// profile type exists per Role.
type Profile interface {
	Role() Role
	validate() error
}

type CustomerProfile struct{}

func (CustomerProfile) Role() Role { return Customer }

func (CustomerProfile) validate() error { return nil }

type MerchantProfile struct {
	MerchantName string
}

func (MerchantProfile) Role() Role { return Merchant }

func (p MerchantProfile) validate() error {
	if p.MerchantName == "" {
		return errs.NewValueIsRequiredError("merchant name")
	}
	return nil
}

type DeliveryManProfile struct {
	Name  string
	Phone string
}

func (DeliveryManProfile) Role() Role { return DeliveryMan }

func (p DeliveryManProfile) validate() error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError("delivery man name")
	}
	return nil
}

type AdminProfile struct{}

func (AdminProfile) Role() Role { return Admin }

func (AdminProfile) validate() error { return nil }
