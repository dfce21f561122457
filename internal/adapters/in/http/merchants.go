package http

import (
	"net/http"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/generated/servers"
	"takeout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const uploadField = "file"

func (s *Server) GetMerchantMenu(ctx echo.Context, params servers.GetMerchantMenuParams) error {
	return s.menu(ctx, params.MerchantId, params.Page, params.Size)
}

func (s *Server) menu(ctx echo.Context, merchantId openapi_types.UUID, number, size *int) error {
	merchantID, err := toID("merchantId", merchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	req, err := pageRequest(number, size)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetMenuQuery(merchantID, req)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDishPage(result))
}

func (s *Server) CreateDish(ctx echo.Context) error {
	var body servers.CreateDishJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	merchantID, err := toID("merchantId", body.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	dishID := kernel.NewUUID()
	cmd, err := commands.NewAddDishCommand(
		dishID, merchantID, body.Name, price, value(body.Description), value(body.ImageUrl),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AddDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDish(ctx, http.StatusCreated, dishID)
}

func (s *Server) UpdateDish(ctx echo.Context, dishId openapi_types.UUID, params servers.UpdateDishParams) error {
	var body servers.UpdateDishJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	merchantID, err := toID("merchantId", params.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	dishID, err := toID("dishId", dishId)
	if err != nil {
		return s.fail(ctx, err)
	}

	patch := dish.Patch{
		Name:        body.Name,
		Description: body.Description,
		ImageURL:    body.ImageUrl,
	}
	if body.Price != nil {
		price, priceErr := kernel.MoneyFromString(*body.Price)
		if priceErr != nil {
			return s.fail(ctx, priceErr)
		}
		patch.Price = &price
	}

	cmd, err := commands.NewUpdateDishCommand(merchantID, dishID, patch)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondDish(ctx, http.StatusOK, dishID)
}

func (s *Server) DeleteDish(ctx echo.Context, dishId openapi_types.UUID, params servers.DeleteDishParams) error {
	merchantID, err := toID("merchantId", params.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	dishID, err := toID("dishId", dishId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteDishCommand(merchantID, dishID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) ListSales(ctx echo.Context, params servers.ListSalesParams) error {
	merchantID, err := toID("merchantId", params.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	req, err := pageRequest(params.Page, params.Size)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListMerchantSalesQuery(merchantID, params.StartDate, params.EndDate, req)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ListMerchantSales.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

func (s *Server) ListPendingOrders(ctx echo.Context, params servers.ListPendingOrdersParams) error {
	merchantID, err := toID("merchantId", params.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	req, err := pageRequest(params.Page, params.Size)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListPendingOrdersQuery(merchantID, req)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ListPendingOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.AcceptOrderParams) error {
	merchantID, err := toID("merchantId", params.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAcceptOrderCommand(merchantID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// RequestDelivery assigns the named courier, or opens the order to claims
// when the body names none.
func (s *Server) RequestDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RequestDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	merchantID, err := toID("merchantId", body.MerchantId)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var courierID *kernel.UUID
	if body.DeliveryManId != nil {
		id, idErr := toID("deliveryManId", *body.DeliveryManId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		courierID = &id
	}

	cmd, err := commands.NewRequestDeliveryCommand(merchantID, orderID, courierID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RequestDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) UploadImage(ctx echo.Context) error {
	header, err := ctx.FormFile(uploadField)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause(uploadField, err))
	}
	file, err := header.Open()
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause(uploadField, err))
	}
	defer file.Close()

	cmd, err := commands.NewUploadImageCommand(
		header.Filename, header.Header.Get(echo.HeaderContentType), header.Size, file,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	url, err := s.h.UploadImage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.ImageUpload{Url: url})
}

func (s *Server) respondDish(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetDishQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetDish.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toDish(view))
}
