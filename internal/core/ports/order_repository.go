// Package ports declares the contracts between the application core and its
// adapters: repositories bound to a unit of work, event publishing and
// image storage.
package ports

import (
	"context"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	// Add stores a newly placed order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the current state of an order loaded in the same unit of
	// work. The write only applies if the stored version still equals
	// aggregate.Version(); otherwise it returns errs.VersionIsInvalidError and
	// nothing is changed.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with items and review. A missing order yields
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
