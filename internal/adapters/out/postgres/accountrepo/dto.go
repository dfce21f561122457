package accountrepo

import (
	"fmt"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO keeps every role in one table. The role column selects which
// of the profile columns are meaningful.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"not null;uniqueIndex"`
	Phone        string
	Email        string
	Address      string
	Role         int    `gorm:"type:smallint;not null;index"`
	MerchantName string // merchant
	CourierName  string // delivery man
	CourierPhone string // delivery man
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	c := a.Contact()
	dto := AccountDTO{
		ID:       a.ID().Bytes(),
		Username: c.Username,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		Role:     int(a.Role()),
	}

	switch p := a.Profile().(type) {
	case account.MerchantProfile:
		dto.MerchantName = p.MerchantName
	case account.DeliveryManProfile:
		dto.CourierName = p.Name
		dto.CourierPhone = p.Phone
	}

	return dto
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	var profile account.Profile
	switch role := account.Role(dto.Role); role {
	case account.Customer:
		profile = account.CustomerProfile{}
	case account.Merchant:
		profile = account.MerchantProfile{MerchantName: dto.MerchantName}
	case account.DeliveryMan:
		profile = account.DeliveryManProfile{Name: dto.CourierName, Phone: dto.CourierPhone}
	case account.Admin:
		profile = account.AdminProfile{}
	default:
		return nil, fmt.Errorf("account %s has unknown role %d", id, dto.Role)
	}

	return account.NewAccount(id, account.Contact{
		Username: dto.Username,
		Phone:    dto.Phone,
		Email:    dto.Email,
		Address:  dto.Address,
	}, profile)
}
