package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
	"takeout/internal/pkg/page"
)

var (
	ErrListPendingOrdersQueryIsNotConstructed = errors.New(
		"ListPendingOrdersQuery must be created via NewListPendingOrdersQuery constructor",
	)
	ErrListMerchantSalesQueryIsNotConstructed = errors.New(
		"ListMerchantSalesQuery must be created via NewListMerchantSalesQuery constructor",
	)
)

// ListPendingOrdersQuery lists a merchant's orders awaiting confirmation.
type ListPendingOrdersQuery struct {
	merchantID kernel.UUID
	page       page.Request

	guard guard.ConstructorGuard
}

func NewListPendingOrdersQuery(merchantID kernel.UUID, req page.Request) (ListPendingOrdersQuery, error) {
	if err := errors.Join(requireQueryID("merchantId", merchantID), req.Validate()); err != nil {
		return ListPendingOrdersQuery{}, err
	}
	return ListPendingOrdersQuery{merchantID: merchantID, page: req, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPendingOrdersQueryIsNotConstructed)
}

type ListPendingOrdersQueryHandler struct {
	db Querier
}

func NewListPendingOrdersQueryHandler(db Querier) ListPendingOrdersQueryHandler {
	return ListPendingOrdersQueryHandler{db: db}
}

func (h ListPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPendingOrdersQuery,
) (page.Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return page.Page[OrderView]{}, err
	}
	if err := requireAccount(ctx, h.db, query.merchantID, account.Merchant); err != nil {
		return page.Page[OrderView]{}, err
	}

	return listOrders(ctx, h.db,
		"o.merchant_id = $1 AND o.status = $2",
		[]any{query.merchantID.Bytes(), int(order.PendingConfirmation)},
		query.page,
	)
}

// ListMerchantSalesQuery lists all of a merchant's orders, optionally limited
// to an inclusive order-time window. Either bound may be omitted.
type ListMerchantSalesQuery struct {
	merchantID kernel.UUID
	from       *time.Time
	to         *time.Time
	page       page.Request

	guard guard.ConstructorGuard
}

func NewListMerchantSalesQuery(
	merchantID kernel.UUID,
	from *time.Time,
	to *time.Time,
	req page.Request,
) (ListMerchantSalesQuery, error) {
	errList := []error{requireQueryID("merchantId", merchantID), req.Validate()}
	if from != nil && to != nil && to.Before(*from) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"to", fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return ListMerchantSalesQuery{}, err
	}

	return ListMerchantSalesQuery{
		merchantID: merchantID,
		from:       from,
		to:         to,
		page:       req,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListMerchantSalesQuery) Validate() error {
	return q.guard.Validate(ErrListMerchantSalesQueryIsNotConstructed)
}

func (q ListMerchantSalesQuery) MerchantID() kernel.UUID { return q.merchantID }

func (q ListMerchantSalesQuery) Page() page.Request { return q.page }

// WithPage returns a copy of q addressing another page.
func (q ListMerchantSalesQuery) WithPage(req page.Request) ListMerchantSalesQuery {
	q.page = req
	return q
}

type ListMerchantSalesQueryHandler struct {
	db Querier
}

func NewListMerchantSalesQueryHandler(db Querier) ListMerchantSalesQueryHandler {
	return ListMerchantSalesQueryHandler{db: db}
}

func (h ListMerchantSalesQueryHandler) Handle(
	ctx context.Context,
	query ListMerchantSalesQuery,
) (page.Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return page.Page[OrderView]{}, err
	}
	if err := requireAccount(ctx, h.db, query.merchantID, account.Merchant); err != nil {
		return page.Page[OrderView]{}, err
	}

	where := "o.merchant_id = $1"
	args := []any{query.merchantID.Bytes()}
	if query.from != nil {
		args = append(args, *query.from)
		where += fmt.Sprintf(" AND o.order_time >= $%d", len(args))
	}
	if query.to != nil {
		args = append(args, *query.to)
		where += fmt.Sprintf(" AND o.order_time <= $%d", len(args))
	}

	return listOrders(ctx, h.db, where, args, query.page)
}
