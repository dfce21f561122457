package queries

import (
	"context"
	"errors"
	"time"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
	"takeout/internal/pkg/page"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

type DishView struct {
	ID          kernel.UUID
	MerchantID  kernel.UUID
	Name        string
	Price       kernel.Money
	Description string
	ImageURL    string
	CreatedAt   time.Time
}

// GetMenuQuery pages through one merchant's dishes, newest first.
type GetMenuQuery struct {
	merchantID kernel.UUID
	page       page.Request

	guard guard.ConstructorGuard
}

func NewGetMenuQuery(merchantID kernel.UUID, req page.Request) (GetMenuQuery, error) {
	if err := errors.Join(requireQueryID("merchantId", merchantID), req.Validate()); err != nil {
		return GetMenuQuery{}, err
	}
	return GetMenuQuery{merchantID: merchantID, page: req, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type GetMenuQueryHandler struct {
	db Querier
}

func NewGetMenuQueryHandler(db Querier) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (page.Page[DishView], error) {
	if err := query.Validate(); err != nil {
		return page.Page[DishView]{}, err
	}
	if err := requireAccount(ctx, h.db, query.merchantID, account.Merchant); err != nil {
		return page.Page[DishView]{}, err
	}

	var total int64
	err := h.db.QueryRow(ctx, "SELECT count(*) FROM dishes WHERE merchant_id = $1", query.merchantID.Bytes()).
		Scan(&total)
	if err != nil {
		return page.Page[DishView]{}, err
	}

	rows, err := h.db.Query(ctx, `
		SELECT id, merchant_id, name, price::text, description, image_url, created_at
		FROM dishes
		WHERE merchant_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		query.merchantID.Bytes(), query.page.Size(), query.page.Offset(),
	)
	if err != nil {
		return page.Page[DishView]{}, err
	}

	dishes, err := pgx.CollectRows(rows, scanDish)
	if err != nil {
		return page.Page[DishView]{}, err
	}

	return page.New(dishes, query.page, total), nil
}

func scanDish(row pgx.CollectableRow) (DishView, error) {
	var (
		id, merchantID uuid.UUID
		price          string
		description    *string
		imageURL       *string
		view           DishView
		err            error
	)
	if err = row.Scan(&id, &merchantID, &view.Name, &price, &description, &imageURL, &view.CreatedAt); err != nil {
		return DishView{}, err
	}
	if view.ID, err = kernel.UUIDFrom(id); err != nil {
		return DishView{}, err
	}
	if view.MerchantID, err = kernel.UUIDFrom(merchantID); err != nil {
		return DishView{}, err
	}
	if view.Price, err = kernel.MoneyFromString(price); err != nil {
		return DishView{}, err
	}
	if description != nil {
		view.Description = *description
	}
	if imageURL != nil {
		view.ImageURL = *imageURL
	}
	return view, nil
}

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

type GetDishQuery struct {
	dishID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDishQuery(dishID kernel.UUID) (GetDishQuery, error) {
	if err := requireQueryID("dishId", dishID); err != nil {
		return GetDishQuery{}, err
	}
	return GetDishQuery{dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

type GetDishQueryHandler struct {
	db Querier
}

func NewGetDishQueryHandler(db Querier) GetDishQueryHandler {
	return GetDishQueryHandler{db: db}
}

func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (DishView, error) {
	if err := query.Validate(); err != nil {
		return DishView{}, err
	}

	rows, err := h.db.Query(ctx, `
		SELECT id, merchant_id, name, price::text, description, image_url, created_at
		FROM dishes
		WHERE id = $1`, query.dishID.Bytes())
	if err != nil {
		return DishView{}, err
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanDish)
	if errors.Is(err, pgx.ErrNoRows) {
		return DishView{}, errs.NewObjectNotFoundError("dish", query.dishID.String())
	}
	return view, err
}
