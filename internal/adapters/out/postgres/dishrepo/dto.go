package dishrepo

import (
	"time"

	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DishDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string
	ImageURL    string
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;index"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID().Bytes(),
		MerchantID:  d.MerchantID().Bytes(),
		Name:        d.Name(),
		Price:       d.Price().Decimal(),
		Description: d.Description(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFrom(dto.MerchantID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return dish.NewDish(id, merchantID, dto.Name, price, dto.Description, dto.ImageURL)
}
