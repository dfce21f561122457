package http

import (
	"net/http"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/generated/servers"
	"takeout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) GetOrderReview(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderReviewQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetOrderReview.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReview(view))
}

func (s *Server) PutOrderReview(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.PutOrderReviewParams,
) error {
	if err := s.review(ctx, params.CustomerId, orderId); err != nil {
		return s.fail(ctx, err)
	}
	return s.GetOrderReview(ctx, orderId)
}

// review attaches or replaces the caller's review of an order.
func (s *Server) review(ctx echo.Context, customerId, orderId openapi_types.UUID) error {
	var body servers.ReviewRequest
	if err := ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	customerID, err := toID("customerId", customerId)
	if err != nil {
		return err
	}
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReviewOrderCommand(customerID, orderID, body.Rating, value(body.Comment))
	if err != nil {
		return err
	}
	return s.h.ReviewOrder.Handle(ctx.Request().Context(), cmd)
}
