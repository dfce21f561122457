package queries

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

var ErrGetOrderReviewQueryIsNotConstructed = errors.New(
	"GetOrderReviewQuery must be created via NewGetOrderReviewQuery constructor",
)

type GetOrderReviewQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderReviewQuery(orderID kernel.UUID) (GetOrderReviewQuery, error) {
	if err := requireQueryID("orderId", orderID); err != nil {
		return GetOrderReviewQuery{}, err
	}
	return GetOrderReviewQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderReviewQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReviewQueryIsNotConstructed)
}

type GetOrderReviewQueryHandler struct {
	db Querier
}

func NewGetOrderReviewQueryHandler(db Querier) GetOrderReviewQueryHandler {
	return GetOrderReviewQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown order and for an order
// that has not been reviewed.
func (h GetOrderReviewQueryHandler) Handle(ctx context.Context, query GetOrderReviewQuery) (ReviewView, error) {
	if err := query.Validate(); err != nil {
		return ReviewView{}, err
	}

	view, err := getOrder(ctx, h.db, query.orderID)
	if err != nil {
		return ReviewView{}, err
	}
	if view.Review == nil {
		return ReviewView{}, errs.NewObjectNotFoundError("review", query.orderID.String())
	}
	return *view.Review, nil
}
