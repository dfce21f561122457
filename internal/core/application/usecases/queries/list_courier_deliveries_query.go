package queries

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/guard"
	"takeout/internal/pkg/page"
)

var ErrListCourierDeliveriesQueryIsNotConstructed = errors.New(
	"ListCourierDeliveriesQuery must be created via NewListCourierDeliveriesQuery constructor",
)

// ListCourierDeliveriesQuery lists every order ever assigned to a courier,
// whatever its current status.
type ListCourierDeliveriesQuery struct {
	courierID kernel.UUID
	page      page.Request

	guard guard.ConstructorGuard
}

func NewListCourierDeliveriesQuery(courierID kernel.UUID, req page.Request) (ListCourierDeliveriesQuery, error) {
	if err := errors.Join(requireQueryID("courierId", courierID), req.Validate()); err != nil {
		return ListCourierDeliveriesQuery{}, err
	}
	return ListCourierDeliveriesQuery{courierID: courierID, page: req, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListCourierDeliveriesQueryIsNotConstructed)
}

type ListCourierDeliveriesQueryHandler struct {
	db Querier
}

func NewListCourierDeliveriesQueryHandler(db Querier) ListCourierDeliveriesQueryHandler {
	return ListCourierDeliveriesQueryHandler{db: db}
}

func (h ListCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListCourierDeliveriesQuery,
) (page.Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return page.Page[OrderView]{}, err
	}
	if err := requireAccount(ctx, h.db, query.courierID, account.DeliveryMan); err != nil {
		return page.Page[OrderView]{}, err
	}

	return listOrders(ctx, h.db, "o.courier_id = $1", []any{query.courierID.Bytes()}, query.page)
}
