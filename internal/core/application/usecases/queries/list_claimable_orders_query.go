package queries

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/guard"
	"takeout/internal/pkg/page"
)

var ErrListClaimableOrdersQueryIsNotConstructed = errors.New(
	"ListClaimableOrdersQuery must be created via NewListClaimableOrdersQuery constructor",
)

// ListClaimableOrdersQuery lists orders a courier could pick up: waiting for
// delivery and not yet assigned.
type ListClaimableOrdersQuery struct {
	courierID kernel.UUID
	page      page.Request

	guard guard.ConstructorGuard
}

func NewListClaimableOrdersQuery(courierID kernel.UUID, req page.Request) (ListClaimableOrdersQuery, error) {
	if err := errors.Join(requireQueryID("courierId", courierID), req.Validate()); err != nil {
		return ListClaimableOrdersQuery{}, err
	}
	return ListClaimableOrdersQuery{courierID: courierID, page: req, guard: guard.NewConstructorGuard()}, nil
}

func (q ListClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListClaimableOrdersQueryIsNotConstructed)
}

type ListClaimableOrdersQueryHandler struct {
	db Querier
}

func NewListClaimableOrdersQueryHandler(db Querier) ListClaimableOrdersQueryHandler {
	return ListClaimableOrdersQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the courier does not exist.
func (h ListClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListClaimableOrdersQuery,
) (page.Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return page.Page[OrderView]{}, err
	}
	if err := requireAccount(ctx, h.db, query.courierID, account.DeliveryMan); err != nil {
		return page.Page[OrderView]{}, err
	}

	return listOrders(ctx, h.db,
		"o.status = $1 AND o.courier_id IS NULL",
		[]any{int(order.RequestingDelivery)},
		query.page,
	)
}
