// Package servers holds the wire types and echo route bindings of the
// OpenAPI document in api/openapi.yaml, in the layout oapi-codegen emits.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for Role.
const (
	ADMIN       Role = "ADMIN"
	CUSTOMER    Role = "CUSTOMER"
	DELIVERYMAN Role = "DELIVERY_MAN"
	MERCHANT    Role = "MERCHANT"
)

// Defines values for OrderStatus.
const (
	DELIVERED           OrderStatus = "DELIVERED"
	DELIVERING          OrderStatus = "DELIVERING"
	PENDING             OrderStatus = "PENDING"
	PENDINGCONFIRMATION OrderStatus = "PENDING_CONFIRMATION"
	PREPARING           OrderStatus = "PREPARING"
	REQUESTINGDELIVERY  OrderStatus = "REQUESTING_DELIVERY"
	REVIEWED            OrderStatus = "REVIEWED"
)

// Account defines model for Account.
type Account struct {
	Address          *string            `json:"address,omitempty"`
	DeliveryManName  *string            `json:"deliveryManName,omitempty"`
	DeliveryManPhone *string            `json:"deliveryManPhone,omitempty"`
	Email            *string            `json:"email,omitempty"`
	Id               openapi_types.UUID `json:"id"`
	MerchantName     *string            `json:"merchantName,omitempty"`
	Phone            *string            `json:"phone,omitempty"`
	Role             Role               `json:"role"`
	Username         string             `json:"username"`
}

// AccountPage defines model for AccountPage.
type AccountPage struct {
	Content       []Account `json:"content"`
	Last          bool      `json:"last"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

// DeliveryRequest defines model for DeliveryRequest.
type DeliveryRequest struct {
	// DeliveryManId Assigns this courier directly. Without it the order is opened to claims.
	DeliveryManId *openapi_types.UUID `json:"deliveryManId,omitempty"`
	MerchantId    openapi_types.UUID  `json:"merchantId"`
}

// Dish defines model for Dish.
type Dish struct {
	Description *string            `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	ImageUrl    *string            `json:"imageUrl,omitempty"`
	MerchantId  openapi_types.UUID `json:"merchantId"`
	Name        string             `json:"name"`
	Price       Money              `json:"price"`
}

// DishPage defines model for DishPage.
type DishPage struct {
	Content       []Dish `json:"content"`
	Last          bool   `json:"last"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}

// DishUpdate defines model for DishUpdate.
type DishUpdate struct {
	Description *string `json:"description,omitempty"`
	ImageUrl    *string `json:"imageUrl,omitempty"`
	Name        *string `json:"name,omitempty"`
	Price       *Money  `json:"price,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ImageUpload defines model for ImageUpload.
type ImageUpload struct {
	Url string `json:"url"`
}

// Money defines model for Money.
type Money = string

// NewAccount defines model for NewAccount.
type NewAccount struct {
	Address          *string `json:"address,omitempty"`
	DeliveryManName  *string `json:"deliveryManName,omitempty"`
	DeliveryManPhone *string `json:"deliveryManPhone,omitempty"`
	Email            *string `json:"email,omitempty"`
	MerchantName     *string `json:"merchantName,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Role             Role    `json:"role"`
	Username         string  `json:"username"`
}

// NewDish defines model for NewDish.
type NewDish struct {
	Description *string            `json:"description,omitempty"`
	ImageUrl    *string            `json:"imageUrl,omitempty"`
	MerchantId  openapi_types.UUID `json:"merchantId"`
	Name        string             `json:"name"`
	Price       Money              `json:"price"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerId       openapi_types.UUID   `json:"customerId"`
	DeliveryLocation string               `json:"deliveryLocation"`
	DeliveryTime     time.Time            `json:"deliveryTime"`
	DishIds          []openapi_types.UUID `json:"dishIds"`
	MerchantId       openapi_types.UUID   `json:"merchantId"`
}

// Order defines model for Order.
type Order struct {
	CourierId        *openapi_types.UUID `json:"courierId"`
	CustomerId       openapi_types.UUID  `json:"customerId"`
	DeliveryLocation string              `json:"deliveryLocation"`
	DeliveryTime     time.Time           `json:"deliveryTime"`
	Dishes           []OrderItem         `json:"dishes"`
	Id               openapi_types.UUID  `json:"id"`
	MerchantId       openapi_types.UUID  `json:"merchantId"`
	OrderTime        time.Time           `json:"orderTime"`
	Review           *Review             `json:"review"`
	Status           OrderStatus         `json:"status"`
	TotalPrice       Money               `json:"totalPrice"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	DishId openapi_types.UUID `json:"dishId"`
	Name   string             `json:"name"`
	Price  Money              `json:"price"`
}

// OrderPage defines model for OrderPage.
type OrderPage struct {
	Content       []Order `json:"content"`
	Last          bool    `json:"last"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Review defines model for Review.
type Review struct {
	Comment    *string            `json:"comment,omitempty"`
	OrderId    openapi_types.UUID `json:"orderId"`
	Rating     int                `json:"rating"`
	ReviewTime time.Time          `json:"reviewTime"`
}

// ReviewRequest defines model for ReviewRequest.
type ReviewRequest struct {
	Comment *string `json:"comment,omitempty"`
	Rating  int     `json:"rating"`
}

// Role defines model for Role.
type Role string

// CustomerId defines model for CustomerId.
type CustomerId = openapi_types.UUID

// DeliveryManId defines model for DeliveryManId.
type DeliveryManId = openapi_types.UUID

// MerchantId defines model for MerchantId.
type MerchantId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// Page defines model for Page.
type Page = int

// Size defines model for Size.
type Size = int

// ListAccountsParams defines parameters for ListAccounts.
type ListAccountsParams struct {
	Role *Role `form:"role,omitempty" json:"role,omitempty"`
	Page *Page `form:"page,omitempty" json:"page,omitempty"`
	Size *Size `form:"size,omitempty" json:"size,omitempty"`
}

// GetMenuParams defines parameters for GetMenu.
type GetMenuParams struct {
	MerchantId MerchantId `form:"merchantId" json:"merchantId"`
	Page       *Page      `form:"page,omitempty" json:"page,omitempty"`
	Size       *Size      `form:"size,omitempty" json:"size,omitempty"`
}

// ListCustomerOrdersParams defines parameters for ListCustomerOrders.
type ListCustomerOrdersParams struct {
	CustomerId CustomerId `form:"customerId" json:"customerId"`
	Page       *Page      `form:"page,omitempty" json:"page,omitempty"`
	Size       *Size      `form:"size,omitempty" json:"size,omitempty"`
}

// GetCustomerOrderParams defines parameters for GetCustomerOrder.
type GetCustomerOrderParams struct {
	CustomerId CustomerId `form:"customerId" json:"customerId"`
}

// ReviewCustomerOrderParams defines parameters for ReviewCustomerOrder.
type ReviewCustomerOrderParams struct {
	CustomerId CustomerId `form:"customerId" json:"customerId"`
}

// PutOrderReviewParams defines parameters for PutOrderReview.
type PutOrderReviewParams struct {
	CustomerId CustomerId `form:"customerId" json:"customerId"`
}

// GetMerchantMenuParams defines parameters for GetMerchantMenu.
type GetMerchantMenuParams struct {
	MerchantId MerchantId `form:"merchantId" json:"merchantId"`
	Page       *Page      `form:"page,omitempty" json:"page,omitempty"`
	Size       *Size      `form:"size,omitempty" json:"size,omitempty"`
}

// DeleteDishParams defines parameters for DeleteDish.
type DeleteDishParams struct {
	MerchantId MerchantId `form:"merchantId" json:"merchantId"`
}

// UpdateDishParams defines parameters for UpdateDish.
type UpdateDishParams struct {
	MerchantId MerchantId `form:"merchantId" json:"merchantId"`
}

// ListPendingOrdersParams defines parameters for ListPendingOrders.
type ListPendingOrdersParams struct {
	MerchantId MerchantId `form:"merchantId" json:"merchantId"`
	Page       *Page      `form:"page,omitempty" json:"page,omitempty"`
	Size       *Size      `form:"size,omitempty" json:"size,omitempty"`
}

// AcceptOrderParams defines parameters for AcceptOrder.
type AcceptOrderParams struct {
	MerchantId MerchantId `form:"merchantId" json:"merchantId"`
}

// ListSalesParams defines parameters for ListSales.
type ListSalesParams struct {
	MerchantId MerchantId `form:"merchantId" json:"merchantId"`
	StartDate  *time.Time `form:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate    *time.Time `form:"endDate,omitempty" json:"endDate,omitempty"`
	Page       *Page      `form:"page,omitempty" json:"page,omitempty"`
	Size       *Size      `form:"size,omitempty" json:"size,omitempty"`
}

// ListDeliveriesParams defines parameters for ListDeliveries.
type ListDeliveriesParams struct {
	DeliveryManId DeliveryManId `form:"deliveryManId" json:"deliveryManId"`
	Page          *Page         `form:"page,omitempty" json:"page,omitempty"`
	Size          *Size         `form:"size,omitempty" json:"size,omitempty"`
}

// ListAvailableOrdersParams defines parameters for ListAvailableOrders.
type ListAvailableOrdersParams struct {
	DeliveryManId DeliveryManId `form:"deliveryManId" json:"deliveryManId"`
	Page          *Page         `form:"page,omitempty" json:"page,omitempty"`
	Size          *Size         `form:"size,omitempty" json:"size,omitempty"`
}

// DeliverOrderParams defines parameters for DeliverOrder.
type DeliverOrderParams struct {
	DeliveryManId DeliveryManId `form:"deliveryManId" json:"deliveryManId"`
}

// PickupOrderParams defines parameters for PickupOrder.
type PickupOrderParams struct {
	DeliveryManId DeliveryManId `form:"deliveryManId" json:"deliveryManId"`
}

// CreateAccountJSONRequestBody defines body for CreateAccount for application/json ContentType.
type CreateAccountJSONRequestBody = NewAccount

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ReviewCustomerOrderJSONRequestBody defines body for ReviewCustomerOrder for application/json ContentType.
type ReviewCustomerOrderJSONRequestBody = ReviewRequest

// PutOrderReviewJSONRequestBody defines body for PutOrderReview for application/json ContentType.
type PutOrderReviewJSONRequestBody = ReviewRequest

// CreateDishJSONRequestBody defines body for CreateDish for application/json ContentType.
type CreateDishJSONRequestBody = NewDish

// UpdateDishJSONRequestBody defines body for UpdateDish for application/json ContentType.
type UpdateDishJSONRequestBody = DishUpdate

// RequestDeliveryJSONRequestBody defines body for RequestDelivery for application/json ContentType.
type RequestDeliveryJSONRequestBody = DeliveryRequest
