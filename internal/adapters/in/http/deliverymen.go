package http

import (
	"net/http"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListAvailableOrders(ctx echo.Context, params servers.ListAvailableOrdersParams) error {
	courierID, err := toID("deliveryManId", params.DeliveryManId)
	if err != nil {
		return s.fail(ctx, err)
	}
	req, err := pageRequest(params.Page, params.Size)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListClaimableOrdersQuery(courierID, req)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ListClaimableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

// PickupOrder claims an order for the calling courier. Losing a race to
// another courier answers 409.
func (s *Server) PickupOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.PickupOrderParams) error {
	courierID, err := toID("deliveryManId", params.DeliveryManId)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ClaimOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) DeliverOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.DeliverOrderParams) error {
	courierID, err := toID("deliveryManId", params.DeliveryManId)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewConfirmDeliveryCommand(courierID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) ListDeliveries(ctx echo.Context, params servers.ListDeliveriesParams) error {
	courierID, err := toID("deliveryManId", params.DeliveryManId)
	if err != nil {
		return s.fail(ctx, err)
	}
	req, err := pageRequest(params.Page, params.Size)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListCourierDeliveriesQuery(courierID, req)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPage(result))
}
