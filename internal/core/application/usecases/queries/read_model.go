// Package queries contains read-only operations. Handlers run SQL directly
// against the database through pgx and return flat views, bypassing the
// aggregates.
package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/page"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Querier is the read side of a pgx connection. *pgxpool.Pool satisfies it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// OrderView is an order as returned to callers.
type OrderView struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	MerchantID       kernel.UUID
	CourierID        *kernel.UUID
	Items            []ItemView
	Total            kernel.Money
	DeliveryLocation string
	OrderTime        time.Time
	DeliveryTime     time.Time
	Status           order.Status
	Review           *ReviewView
}

type ItemView struct {
	DishID kernel.UUID
	Name   string
	Price  kernel.Money
}

type ReviewView struct {
	OrderID    kernel.UUID
	Rating     int
	Comment    string
	ReviewedAt time.Time
}

const orderSelect = `
	SELECT
		o.id,
		o.customer_id,
		o.merchant_id,
		o.courier_id,
		o.total::text,
		o.delivery_location,
		o.order_time,
		o.delivery_time,
		o.status,
		r.rating,
		r.comment,
		r.reviewed_at
	FROM orders o
	LEFT JOIN reviews r ON r.order_id = o.id`

// listOrders returns one page of orders matching where, newest first. where
// refers to the orders table as o and uses placeholders $1..$len(args).
func listOrders(ctx context.Context, db Querier, where string, args []any, req page.Request) (page.Page[OrderView], error) {
	var total int64
	if err := db.QueryRow(ctx, "SELECT count(*) FROM orders o WHERE "+where, args...).Scan(&total); err != nil {
		return page.Page[OrderView]{}, err
	}

	pageArgs := make([]any, 0, len(args)+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, req.Size(), req.Offset())

	sql := fmt.Sprintf("%s WHERE %s ORDER BY o.order_time DESC, o.id LIMIT $%d OFFSET $%d",
		orderSelect, where, len(args)+1, len(args)+2)

	rows, err := db.Query(ctx, sql, pageArgs...)
	if err != nil {
		return page.Page[OrderView]{}, err
	}
	views, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return page.Page[OrderView]{}, err
	}

	if err = attachItems(ctx, db, views); err != nil {
		return page.Page[OrderView]{}, err
	}

	return page.New(views, req, total), nil
}

// getOrder loads a single order view or returns ObjectNotFoundError.
func getOrder(ctx context.Context, db Querier, id kernel.UUID) (OrderView, error) {
	rows, err := db.Query(ctx, orderSelect+" WHERE o.id = $1", id.Bytes())
	if err != nil {
		return OrderView{}, err
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("order", id.String())
		}
		return OrderView{}, err
	}

	views := []OrderView{view}
	if err = attachItems(ctx, db, views); err != nil {
		return OrderView{}, err
	}
	return views[0], nil
}

func scanOrder(row pgx.CollectableRow) (OrderView, error) {
	var (
		id, customerID, merchantID uuid.UUID
		courierID                  *uuid.UUID
		total                      string
		status                     int
		rating                     *int
		comment                    *string
		reviewedAt                 *time.Time
		view                       OrderView
	)

	err := row.Scan(
		&id,
		&customerID,
		&merchantID,
		&courierID,
		&total,
		&view.DeliveryLocation,
		&view.OrderTime,
		&view.DeliveryTime,
		&status,
		&rating,
		&comment,
		&reviewedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFrom(id); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFrom(customerID); err != nil {
		return OrderView{}, err
	}
	if view.MerchantID, err = kernel.UUIDFrom(merchantID); err != nil {
		return OrderView{}, err
	}
	if courierID != nil {
		cID, cErr := kernel.UUIDFrom(*courierID)
		if cErr != nil {
			return OrderView{}, cErr
		}
		view.CourierID = &cID
	}
	if view.Total, err = kernel.MoneyFromString(total); err != nil {
		return OrderView{}, err
	}

	view.Status = order.Status(status)

	if rating != nil {
		view.Review = &ReviewView{OrderID: view.ID, Rating: *rating}
		if comment != nil {
			view.Review.Comment = *comment
		}
		if reviewedAt != nil {
			view.Review.ReviewedAt = *reviewedAt
		}
	}

	return view, nil
}

// attachItems fills Items of every view with one extra round trip.
func attachItems(ctx context.Context, db Querier, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	index := make(map[kernel.UUID]int, len(views))
	for i, v := range views {
		ids = append(ids, v.ID.Bytes())
		index[v.ID] = i
		views[i].Items = make([]ItemView, 0)
	}

	rows, err := db.Query(ctx, `
		SELECT order_id, dish_id, name, price::text
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, dishID uuid.UUID
			name, price     string
		)
		if err = rows.Scan(&orderID, &dishID, &name, &price); err != nil {
			return err
		}

		oID, idErr := kernel.UUIDFrom(orderID)
		if idErr != nil {
			return idErr
		}
		item := ItemView{Name: name}
		if item.DishID, err = kernel.UUIDFrom(dishID); err != nil {
			return err
		}
		if item.Price, err = kernel.MoneyFromString(price); err != nil {
			return err
		}

		i := index[oID]
		views[i].Items = append(views[i].Items, item)
	}

	return rows.Err()
}

// requireAccount returns ObjectNotFoundError unless id names an account with
// the given role.
func requireAccount(ctx context.Context, db Querier, id kernel.UUID, role account.Role) error {
	var exists bool
	err := db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1 AND role = $2)",
		id.Bytes(), int(role),
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError(strings.ToLower(role.String()), id.String())
	}
	return nil
}

func requireQueryID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
