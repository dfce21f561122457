package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /accounts)
	CreateAccount(ctx echo.Context) error

	// (GET /accounts)
	ListAccounts(ctx echo.Context, params ListAccountsParams) error

	// (DELETE /accounts/{accountId})
	DeleteAccount(ctx echo.Context, accountId openapi_types.UUID) error

	// (GET /accounts/{accountId})
	GetAccount(ctx echo.Context, accountId openapi_types.UUID) error

	// (GET /customers/menu)
	GetMenu(ctx echo.Context, params GetMenuParams) error

	// (GET /customers/orders)
	ListCustomerOrders(ctx echo.Context, params ListCustomerOrdersParams) error

	// (POST /customers/orders)
	CreateOrder(ctx echo.Context) error

	// (GET /customers/orders/{orderId})
	GetCustomerOrder(ctx echo.Context, orderId openapi_types.UUID, params GetCustomerOrderParams) error

	// (POST /customers/orders/{orderId}/reviews)
	ReviewCustomerOrder(ctx echo.Context, orderId openapi_types.UUID, params ReviewCustomerOrderParams) error

	// (GET /deliverymen/orders)
	ListDeliveries(ctx echo.Context, params ListDeliveriesParams) error

	// (GET /deliverymen/orders/available)
	ListAvailableOrders(ctx echo.Context, params ListAvailableOrdersParams) error

	// (PUT /deliverymen/orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderId openapi_types.UUID, params DeliverOrderParams) error

	// (PUT /deliverymen/orders/{orderId}/pickup)
	PickupOrder(ctx echo.Context, orderId openapi_types.UUID, params PickupOrderParams) error

	// (POST /merchants/images/upload)
	UploadImage(ctx echo.Context) error

	// (GET /merchants/menu)
	GetMerchantMenu(ctx echo.Context, params GetMerchantMenuParams) error

	// (POST /merchants/menu)
	CreateDish(ctx echo.Context) error

	// (DELETE /merchants/menu/{dishId})
	DeleteDish(ctx echo.Context, dishId openapi_types.UUID, params DeleteDishParams) error

	// (PUT /merchants/menu/{dishId})
	UpdateDish(ctx echo.Context, dishId openapi_types.UUID, params UpdateDishParams) error

	// (GET /merchants/orders/pending)
	ListPendingOrders(ctx echo.Context, params ListPendingOrdersParams) error

	// (PUT /merchants/orders/{orderId}/accept)
	AcceptOrder(ctx echo.Context, orderId openapi_types.UUID, params AcceptOrderParams) error

	// (PUT /merchants/orders/{orderId}/requestDelivery)
	RequestDelivery(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /merchants/sales)
	ListSales(ctx echo.Context, params ListSalesParams) error

	// (GET /reviews/orders/{orderId})
	GetOrderReview(ctx echo.Context, orderId openapi_types.UUID) error

	// (PUT /reviews/orders/{orderId})
	PutOrderReview(ctx echo.Context, orderId openapi_types.UUID, params PutOrderReviewParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateAccount converts echo context to params.
func (w *ServerInterfaceWrapper) CreateAccount(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateAccount(ctx)
	return err
}

// ListAccounts converts echo context to params.
func (w *ServerInterfaceWrapper) ListAccounts(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListAccountsParams
	// ------------- Optional query parameter "role" -------------

	err = runtime.BindQueryParameter("form", true, false, "role", ctx.QueryParams(), &params.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAccounts(ctx, params)
	return err
}

// DeleteAccount converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteAccount(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "accountId" -------------
	var accountId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "accountId", ctx.Param("accountId"), &accountId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter accountId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteAccount(ctx, accountId)
	return err
}

// GetAccount converts echo context to params.
func (w *ServerInterfaceWrapper) GetAccount(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "accountId" -------------
	var accountId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "accountId", ctx.Param("accountId"), &accountId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter accountId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetAccount(ctx, accountId)
	return err
}

// GetMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetMenuParams
	// ------------- Required query parameter "merchantId" -------------

	err = runtime.BindQueryParameter("form", true, true, "merchantId", ctx.QueryParams(), &params.MerchantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantId: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMenu(ctx, params)
	return err
}

// ListCustomerOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListCustomerOrdersParams
	// ------------- Required query parameter "customerId" -------------

	err = runtime.BindQueryParameter("form", true, true, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCustomerOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetCustomerOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomerOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetCustomerOrderParams
	// ------------- Required query parameter "customerId" -------------

	err = runtime.BindQueryParameter("form", true, true, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCustomerOrder(ctx, orderId, params)
	return err
}

// ReviewCustomerOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ReviewCustomerOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params ReviewCustomerOrderParams
	// ------------- Required query parameter "customerId" -------------

	err = runtime.BindQueryParameter("form", true, true, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReviewCustomerOrder(ctx, orderId, params)
	return err
}

// ListDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveries(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListDeliveriesParams
	// ------------- Required query parameter "deliveryManId" -------------

	err = runtime.BindQueryParameter("form", true, true, "deliveryManId", ctx.QueryParams(), &params.DeliveryManId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryManId: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDeliveries(ctx, params)
	return err
}

// ListAvailableOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListAvailableOrdersParams
	// ------------- Required query parameter "deliveryManId" -------------

	err = runtime.BindQueryParameter("form", true, true, "deliveryManId", ctx.QueryParams(), &params.DeliveryManId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryManId: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAvailableOrders(ctx, params)
	return err
}

// DeliverOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params DeliverOrderParams
	// ------------- Required query parameter "deliveryManId" -------------

	err = runtime.BindQueryParameter("form", true, true, "deliveryManId", ctx.QueryParams(), &params.DeliveryManId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryManId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeliverOrder(ctx, orderId, params)
	return err
}

// PickupOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PickupOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params PickupOrderParams
	// ------------- Required query parameter "deliveryManId" -------------

	err = runtime.BindQueryParameter("form", true, true, "deliveryManId", ctx.QueryParams(), &params.DeliveryManId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryManId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PickupOrder(ctx, orderId, params)
	return err
}

// UploadImage converts echo context to params.
func (w *ServerInterfaceWrapper) UploadImage(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UploadImage(ctx)
	return err
}

// GetMerchantMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetMerchantMenu(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetMerchantMenuParams
	// ------------- Required query parameter "merchantId" -------------

	err = runtime.BindQueryParameter("form", true, true, "merchantId", ctx.QueryParams(), &params.MerchantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantId: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMerchantMenu(ctx, params)
	return err
}

// CreateDish converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDish(ctx)
	return err
}

// DeleteDish converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteDish(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "dishId" -------------
	var dishId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "dishId", ctx.Param("dishId"), &dishId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dishId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params DeleteDishParams
	// ------------- Required query parameter "merchantId" -------------

	err = runtime.BindQueryParameter("form", true, true, "merchantId", ctx.QueryParams(), &params.MerchantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteDish(ctx, dishId, params)
	return err
}

// UpdateDish converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDish(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "dishId" -------------
	var dishId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "dishId", ctx.Param("dishId"), &dishId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dishId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params UpdateDishParams
	// ------------- Required query parameter "merchantId" -------------

	err = runtime.BindQueryParameter("form", true, true, "merchantId", ctx.QueryParams(), &params.MerchantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateDish(ctx, dishId, params)
	return err
}

// ListPendingOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListPendingOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListPendingOrdersParams
	// ------------- Required query parameter "merchantId" -------------

	err = runtime.BindQueryParameter("form", true, true, "merchantId", ctx.QueryParams(), &params.MerchantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantId: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPendingOrders(ctx, params)
	return err
}

// AcceptOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params AcceptOrderParams
	// ------------- Required query parameter "merchantId" -------------

	err = runtime.BindQueryParameter("form", true, true, "merchantId", ctx.QueryParams(), &params.MerchantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AcceptOrder(ctx, orderId, params)
	return err
}

// RequestDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) RequestDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RequestDelivery(ctx, orderId)
	return err
}

// ListSales converts echo context to params.
func (w *ServerInterfaceWrapper) ListSales(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListSalesParams
	// ------------- Required query parameter "merchantId" -------------

	err = runtime.BindQueryParameter("form", true, true, "merchantId", ctx.QueryParams(), &params.MerchantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantId: %s", err))
	}

	// ------------- Optional query parameter "startDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "startDate", ctx.QueryParams(), &params.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter startDate: %s", err))
	}

	// ------------- Optional query parameter "endDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "endDate", ctx.QueryParams(), &params.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter endDate: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListSales(ctx, params)
	return err
}

// GetOrderReview converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderReview(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderReview(ctx, orderId)
	return err
}

// PutOrderReview converts echo context to params.
func (w *ServerInterfaceWrapper) PutOrderReview(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params PutOrderReviewParams
	// ------------- Required query parameter "customerId" -------------

	err = runtime.BindQueryParameter("form", true, true, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PutOrderReview(ctx, orderId, params)
	return err
}

// EchoRouter is the part of *echo.Echo and *echo.Group the handlers are
// registered on.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/accounts", wrapper.CreateAccount)
	router.GET(baseURL+"/accounts", wrapper.ListAccounts)
	router.DELETE(baseURL+"/accounts/:accountId", wrapper.DeleteAccount)
	router.GET(baseURL+"/accounts/:accountId", wrapper.GetAccount)
	router.GET(baseURL+"/customers/menu", wrapper.GetMenu)
	router.GET(baseURL+"/customers/orders", wrapper.ListCustomerOrders)
	router.POST(baseURL+"/customers/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/customers/orders/:orderId", wrapper.GetCustomerOrder)
	router.POST(baseURL+"/customers/orders/:orderId/reviews", wrapper.ReviewCustomerOrder)
	router.GET(baseURL+"/deliverymen/orders", wrapper.ListDeliveries)
	router.GET(baseURL+"/deliverymen/orders/available", wrapper.ListAvailableOrders)
	router.PUT(baseURL+"/deliverymen/orders/:orderId/deliver", wrapper.DeliverOrder)
	router.PUT(baseURL+"/deliverymen/orders/:orderId/pickup", wrapper.PickupOrder)
	router.POST(baseURL+"/merchants/images/upload", wrapper.UploadImage)
	router.GET(baseURL+"/merchants/menu", wrapper.GetMerchantMenu)
	router.POST(baseURL+"/merchants/menu", wrapper.CreateDish)
	router.DELETE(baseURL+"/merchants/menu/:dishId", wrapper.DeleteDish)
	router.PUT(baseURL+"/merchants/menu/:dishId", wrapper.UpdateDish)
	router.GET(baseURL+"/merchants/orders/pending", wrapper.ListPendingOrders)
	router.PUT(baseURL+"/merchants/orders/:orderId/accept", wrapper.AcceptOrder)
	router.PUT(baseURL+"/merchants/orders/:orderId/requestDelivery", wrapper.RequestDelivery)
	router.GET(baseURL+"/merchants/sales", wrapper.ListSales)
	router.GET(baseURL+"/reviews/orders/:orderId", wrapper.GetOrderReview)
	router.PUT(baseURL+"/reviews/orders/:orderId", wrapper.PutOrderReview)
}
