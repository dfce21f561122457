package queries

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
	"takeout/internal/pkg/page"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrGetAccountQueryIsNotConstructed = errors.New(
		"GetAccountQuery must be created via NewGetAccountQuery constructor",
	)
	ErrListAccountsQueryIsNotConstructed = errors.New(
		"ListAccountsQuery must be created via NewListAccountsQuery constructor",
	)
)

// AccountView flattens the role profile: only the fields of Role are set.
type AccountView struct {
	ID           kernel.UUID
	Username     string
	Phone        string
	Email        string
	Address      string
	Role         account.Role
	MerchantName string
	CourierName  string
	CourierPhone string
}

const accountSelect = `
	SELECT id, username, phone, email, address, role, merchant_name, courier_name, courier_phone
	FROM accounts`

type GetAccountQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAccountQuery(accountID kernel.UUID) (GetAccountQuery, error) {
	if err := requireQueryID("accountId", accountID); err != nil {
		return GetAccountQuery{}, err
	}
	return GetAccountQuery{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

type GetAccountQueryHandler struct {
	db Querier
}

func NewGetAccountQueryHandler(db Querier) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountView, error) {
	if err := query.Validate(); err != nil {
		return AccountView{}, err
	}

	rows, err := h.db.Query(ctx, accountSelect+" WHERE id = $1", query.accountID.Bytes())
	if err != nil {
		return AccountView{}, err
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanAccount)
	if errors.Is(err, pgx.ErrNoRows) {
		return AccountView{}, errs.NewObjectNotFoundError("account", query.accountID.String())
	}
	return view, err
}

// ListAccountsQuery pages through accounts, optionally of a single role.
type ListAccountsQuery struct {
	role *account.Role
	page page.Request

	guard guard.ConstructorGuard
}

func NewListAccountsQuery(role *account.Role, req page.Request) (ListAccountsQuery, error) {
	errList := []error{req.Validate()}
	if role != nil {
		errList = append(errList, role.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListAccountsQuery{}, err
	}
	return ListAccountsQuery{role: role, page: req, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAccountsQuery) Validate() error {
	return q.guard.Validate(ErrListAccountsQueryIsNotConstructed)
}

type ListAccountsQueryHandler struct {
	db Querier
}

func NewListAccountsQueryHandler(db Querier) ListAccountsQueryHandler {
	return ListAccountsQueryHandler{db: db}
}

func (h ListAccountsQueryHandler) Handle(ctx context.Context, query ListAccountsQuery) (page.Page[AccountView], error) {
	if err := query.Validate(); err != nil {
		return page.Page[AccountView]{}, err
	}

	where := "TRUE"
	args := []any{}
	if query.role != nil {
		where = "role = $1"
		args = append(args, int(*query.role))
	}

	var total int64
	if err := h.db.QueryRow(ctx, "SELECT count(*) FROM accounts WHERE "+where, args...).Scan(&total); err != nil {
		return page.Page[AccountView]{}, err
	}

	args = append(args, query.page.Size(), query.page.Offset())
	sql := accountSelect + " WHERE " + where + " ORDER BY username"
	if query.role != nil {
		sql += " LIMIT $2 OFFSET $3"
	} else {
		sql += " LIMIT $1 OFFSET $2"
	}

	rows, err := h.db.Query(ctx, sql, args...)
	if err != nil {
		return page.Page[AccountView]{}, err
	}
	accounts, err := pgx.CollectRows(rows, scanAccount)
	if err != nil {
		return page.Page[AccountView]{}, err
	}

	return page.New(accounts, query.page, total), nil
}

func scanAccount(row pgx.CollectableRow) (AccountView, error) {
	var (
		id                                    uuid.UUID
		role                                  int
		phone, email, address                 *string
		merchantName, courierName, courierTel *string
		view                                  AccountView
		err                                   error
	)
	err = row.Scan(&id, &view.Username, &phone, &email, &address, &role, &merchantName, &courierName, &courierTel)
	if err != nil {
		return AccountView{}, err
	}
	if view.ID, err = kernel.UUIDFrom(id); err != nil {
		return AccountView{}, err
	}
	view.Role = account.Role(role)
	view.Phone = deref(phone)
	view.Email = deref(email)
	view.Address = deref(address)
	view.MerchantName = deref(merchantName)
	view.CourierName = deref(courierName)
	view.CourierPhone = deref(courierTel)
	return view, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
