package http

import (
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/generated/servers"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/page"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	kid, err := kernel.UUIDFrom(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return kid, nil
}

func pageRequest(number, size *int) (page.Request, error) {
	n, s := page.DefaultNumber, page.DefaultSize
	if number != nil {
		n = *number
	}
	if size != nil {
		s = *size
	}
	return page.NewRequest(n, s)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toOrder(v queries.OrderView) servers.Order {
	dishes := make([]servers.OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		dishes = append(dishes, servers.OrderItem{
			DishId: item.DishID.Bytes(),
			Name:   item.Name,
			Price:  item.Price.String(),
		})
	}

	o := servers.Order{
		Id:               v.ID.Bytes(),
		CustomerId:       v.CustomerID.Bytes(),
		MerchantId:       v.MerchantID.Bytes(),
		Dishes:           dishes,
		TotalPrice:       v.Total.String(),
		DeliveryLocation: v.DeliveryLocation,
		OrderTime:        v.OrderTime,
		DeliveryTime:     v.DeliveryTime,
		Status:           servers.OrderStatus(v.Status.String()),
	}
	if v.CourierID != nil {
		courier := v.CourierID.Bytes()
		o.CourierId = &courier
	}
	if v.Review != nil {
		review := toReview(*v.Review)
		o.Review = &review
	}
	return o
}

func toReview(v queries.ReviewView) servers.Review {
	return servers.Review{
		OrderId:    v.OrderID.Bytes(),
		Rating:     v.Rating,
		Comment:    optional(v.Comment),
		ReviewTime: v.ReviewedAt,
	}
}

func toOrderPage(p page.Page[queries.OrderView]) servers.OrderPage {
	mapped := page.Map(p, toOrder)
	return servers.OrderPage{
		Content:       mapped.Content,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
		Last:          mapped.Last,
	}
}

func toDish(v queries.DishView) servers.Dish {
	return servers.Dish{
		Id:          v.ID.Bytes(),
		MerchantId:  v.MerchantID.Bytes(),
		Name:        v.Name,
		Price:       v.Price.String(),
		Description: optional(v.Description),
		ImageUrl:    optional(v.ImageURL),
	}
}

func toDishPage(p page.Page[queries.DishView]) servers.DishPage {
	mapped := page.Map(p, toDish)
	return servers.DishPage{
		Content:       mapped.Content,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
		Last:          mapped.Last,
	}
}

func toAccount(v queries.AccountView) servers.Account {
	return servers.Account{
		Id:               v.ID.Bytes(),
		Username:         v.Username,
		Phone:            optional(v.Phone),
		Email:            optional(v.Email),
		Address:          optional(v.Address),
		Role:             servers.Role(v.Role.String()),
		MerchantName:     optional(v.MerchantName),
		DeliveryManName:  optional(v.CourierName),
		DeliveryManPhone: optional(v.CourierPhone),
	}
}

func toAccountPage(p page.Page[queries.AccountView]) servers.AccountPage {
	mapped := page.Map(p, toAccount)
	return servers.AccountPage{
		Content:       mapped.Content,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
		Last:          mapped.Last,
	}
}

// toProfile builds the role payload of a new account from the flat body.
func toProfile(body servers.NewAccount) (account.Profile, error) {
	role, err := account.ParseRole(string(body.Role))
	if err != nil {
		return nil, err
	}
	switch role {
	case account.Customer:
		return account.CustomerProfile{}, nil
	case account.Merchant:
		return account.MerchantProfile{MerchantName: value(body.MerchantName)}, nil
	case account.DeliveryMan:
		return account.DeliveryManProfile{
			Name:  value(body.DeliveryManName),
			Phone: value(body.DeliveryManPhone),
		}, nil
	default:
		return account.AdminProfile{}, nil
	}
}
