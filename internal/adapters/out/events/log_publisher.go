package events

import (
	"context"
	"log/slog"

	"takeout/internal/core/domain/model/order"
)

// LogPublisher writes every event to the logger. It is used when no broker
// is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order_events")}
}

func (p *LogPublisher) Publish(ctx context.Context, evts ...order.StatusChangedEvent) error {
	for _, e := range evts {
		m := NewMessage(e)
		p.logger.InfoContext(ctx, "order status changed",
			"order_id", m.OrderID,
			"from", m.From,
			"to", m.To,
			"actor_id", m.ActorID,
		)
	}
	return nil
}
