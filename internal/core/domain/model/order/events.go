package order

import (
	"time"

	"takeout/internal/core/domain/model/kernel"
)

// StatusChangedEvent records one lifecycle transition. From is Unknown for
// the event raised when the order is placed.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	ActorID    kernel.UUID
	OccurredAt time.Time
}

// EventName is used as the routing key and message type by publishers.
func (e StatusChangedEvent) EventName() string {
	return "order.status_changed"
}
