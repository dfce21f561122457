// Package events holds the wire format shared by the order event publishers
// and a publisher that only writes events to the log.
package events

import (
	"encoding/json"
	"time"

	"takeout/internal/core/domain/model/order"
)

// Message is the JSON body of one published status change.
type Message struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	ActorID    string    `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewMessage(e order.StatusChangedEvent) Message {
	m := Message{
		Type:       e.EventName(),
		OrderID:    e.OrderID.String(),
		To:         e.To.String(),
		ActorID:    e.ActorID.String(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.From != order.Unknown {
		m.From = e.From.String()
	}
	return m
}

// Encode returns the order id, used as partition or routing key, and the
// JSON body.
func Encode(e order.StatusChangedEvent) (key string, body []byte, err error) {
	body, err = json.Marshal(NewMessage(e))
	if err != nil {
		return "", nil, err
	}
	return e.OrderID.String(), body, nil
}
