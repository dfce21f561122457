package ports

import (
	"context"

	"takeout/internal/core/domain/model/order"
)

// OrderEventPublisher delivers committed order transitions to the outside
// world. Publishing is best effort: a failure never undoes the transition.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChangedEvent) error
}
