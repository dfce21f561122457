package queries

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
	"takeout/internal/pkg/page"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

type ListCustomerOrdersQuery struct {
	customerID kernel.UUID
	page       page.Request

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.UUID, req page.Request) (ListCustomerOrdersQuery, error) {
	if err := errors.Join(requireQueryID("customerId", customerID), req.Validate()); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{customerID: customerID, page: req, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

type ListCustomerOrdersQueryHandler struct {
	db Querier
}

func NewListCustomerOrdersQueryHandler(db Querier) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) (page.Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return page.Page[OrderView]{}, err
	}
	if err := requireAccount(ctx, h.db, query.customerID, account.Customer); err != nil {
		return page.Page[OrderView]{}, err
	}

	return listOrders(ctx, h.db, "o.customer_id = $1", []any{query.customerID.Bytes()}, query.page)
}

// GetOrderDetailsQuery is a customer looking at one of their own orders.
type GetOrderDetailsQuery struct {
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(customerID, orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := errors.Join(requireQueryID("customerId", customerID), requireQueryID("orderId", orderID)); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{customerID: customerID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

type GetOrderDetailsQueryHandler struct {
	db Querier
}

func NewGetOrderDetailsQueryHandler(db Querier) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle returns ForbiddenError when the order belongs to someone else.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	view, err := getOrder(ctx, h.db, query.orderID)
	if err != nil {
		return OrderView{}, err
	}
	if !view.CustomerID.IsEqual(query.customerID) {
		return OrderView{}, errs.NewForbiddenError("view order "+query.orderID.String(), query.customerID)
	}
	return view, nil
}
