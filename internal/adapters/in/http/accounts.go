package http

import (
	"net/http"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/generated/servers"
	"takeout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) CreateAccount(ctx echo.Context) error {
	var body servers.CreateAccountJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	profile, err := toProfile(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(id, account.Contact{
		Username: body.Username,
		Phone:    value(body.Phone),
		Email:    value(body.Email),
		Address:  value(body.Address),
	}, profile)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondAccount(ctx, http.StatusCreated, id)
}

func (s *Server) GetAccount(ctx echo.Context, accountId openapi_types.UUID) error {
	id, err := toID("accountId", accountId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondAccount(ctx, http.StatusOK, id)
}

func (s *Server) ListAccounts(ctx echo.Context, params servers.ListAccountsParams) error {
	req, err := pageRequest(params.Page, params.Size)
	if err != nil {
		return s.fail(ctx, err)
	}

	var role *account.Role
	if params.Role != nil {
		r, parseErr := account.ParseRole(string(*params.Role))
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		role = &r
	}

	query, err := queries.NewListAccountsQuery(role, req)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ListAccounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAccountPage(result))
}

func (s *Server) DeleteAccount(ctx echo.Context, accountId openapi_types.UUID) error {
	id, err := toID("accountId", accountId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteAccountCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondAccount(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetAccountQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toAccount(view))
}
