package http

import (
	"net/http"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/generated/servers"
	"takeout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) GetMenu(ctx echo.Context, params servers.GetMenuParams) error {
	return s.menu(ctx, params.MerchantId, params.Page, params.Size)
}

func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, err := toID("customerId", body.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	merchantID, err := toID("merchantId", body.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	dishIDs := make([]kernel.UUID, 0, len(body.DishIds))
	for _, raw := range body.DishIds {
		dishID, idErr := toID("dishIds", raw)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		dishIDs = append(dishIDs, dishID)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, merchantID, dishIDs, body.DeliveryLocation, body.DeliveryTime,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

func (s *Server) ListCustomerOrders(ctx echo.Context, params servers.ListCustomerOrdersParams) error {
	customerID, err := toID("customerId", params.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	req, err := pageRequest(params.Page, params.Size)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListCustomerOrdersQuery(customerID, req)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

func (s *Server) GetCustomerOrder(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.GetCustomerOrderParams,
) error {
	customerID, err := toID("customerId", params.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderDetailsQuery(customerID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

func (s *Server) ReviewCustomerOrder(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.ReviewCustomerOrderParams,
) error {
	if err := s.review(ctx, params.CustomerId, orderId); err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// respondOrder writes the committed state of an order.
func (s *Server) respondOrder(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toOrder(view))
}
