package ports

import (
	"context"

	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
)

type DishRepository interface {
	Add(ctx context.Context, aggregate *dish.Dish) error
	Update(ctx context.Context, aggregate *dish.Dish) error
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// FindByIDs returns the dishes among ids that exist, in no particular
	// order. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*dish.Dish, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
