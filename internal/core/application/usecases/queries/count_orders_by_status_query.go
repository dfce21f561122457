package queries

import (
	"context"

	"takeout/internal/core/domain/model/order"
)

// CountOrdersByStatusQueryHandler reports how many orders sit in each status.
// Every known status is present in the result, zero or not.
type CountOrdersByStatusQueryHandler struct {
	db Querier
}

func NewCountOrdersByStatusQueryHandler(db Querier) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

func (h CountOrdersByStatusQueryHandler) Handle(ctx context.Context) (map[order.Status]int64, error) {
	counts := make(map[order.Status]int64, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		counts[s] = 0
	}

	rows, err := h.db.Query(ctx, "SELECT status, count(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status int
			n      int64
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[order.Status(status)] = n
	}

	return counts, rows.Err()
}
