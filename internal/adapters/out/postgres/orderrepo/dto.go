package orderrepo

import (
	"time"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Version is the optimistic concurrency token
// checked by every update.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID        *uuid.UUID      `gorm:"type:uuid;index"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryLocation string          `gorm:"not null"`
	OrderTime        time.Time       `gorm:"not null;index"`
	DeliveryTime     time.Time
	Status           int   `gorm:"type:smallint;not null;index"`
	Version          int64 `gorm:"not null"`

	Items  []ItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Review *ReviewDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one snapshot line of an order. Position keeps the request order.
type ItemDTO struct {
	ID       uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position int             `gorm:"not null"`
	DishID   uuid.UUID       `gorm:"type:uuid;not null"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// ReviewDTO is keyed by order, so an order has at most one review row.
type ReviewDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rating     int       `gorm:"not null"`
	Comment    string
	ReviewedAt time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

// StatusChangeDTO is one row of the order audit trail.
type StatusChangeDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"type:smallint;not null"`
	ToStatus   int       `gorm:"type:smallint;not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	OccurredAt time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := o.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:  o.ID().Bytes(),
			Position: i,
			DishID:   item.DishID().Bytes(),
			Name:     item.Name(),
			Price:    item.Price().Decimal(),
		})
	}

	dto := OrderDTO{
		ID:               o.ID().Bytes(),
		CustomerID:       o.CustomerID().Bytes(),
		MerchantID:       o.MerchantID().Bytes(),
		CourierID:        courierID,
		Total:            o.Total().Decimal(),
		DeliveryLocation: o.DeliveryLocation(),
		OrderTime:        o.OrderTime(),
		DeliveryTime:     o.DeliveryTime(),
		Status:           int(o.Status()),
		Version:          o.Version(),
		Items:            itemDTOs,
	}

	if r := o.Review(); r != nil {
		dto.Review = &ReviewDTO{
			OrderID:    dto.ID,
			Rating:     r.Rating(),
			Comment:    r.Comment(),
			ReviewedAt: r.ReviewedAt(),
		}
	}

	return dto
}

func historyFromEvents(events []order.StatusChangedEvent) []StatusChangeDTO {
	rows := make([]StatusChangeDTO, 0, len(events))
	for _, e := range events {
		rows = append(rows, StatusChangeDTO{
			OrderID:    e.OrderID.Bytes(),
			FromStatus: int(e.From),
			ToStatus:   int(e.To),
			ActorID:    e.ActorID.Bytes(),
			OccurredAt: e.OccurredAt,
		})
	}
	return rows
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFrom(dto.MerchantID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFrom(*dto.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var review *order.Review
	if dto.Review != nil {
		r := order.RestoreReview(dto.Review.Rating, dto.Review.Comment, dto.Review.ReviewedAt)
		review = &r
	}

	return order.RestoreOrder(order.Snapshot{
		ID:               id,
		CustomerID:       customerID,
		MerchantID:       merchantID,
		Items:            items,
		Total:            total,
		DeliveryLocation: dto.DeliveryLocation,
		OrderTime:        dto.OrderTime,
		DeliveryTime:     dto.DeliveryTime,
		CourierID:        courierID,
		Status:           order.Status(dto.Status),
		Review:           review,
		Version:          dto.Version,
	})
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	dishID, err := kernel.UUIDFrom(dto.DishID)
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(dishID, dto.Name, price)
}
