package postgres

import (
	"context"

	"takeout/internal/adapters/out/postgres/accountrepo"
	"takeout/internal/adapters/out/postgres/dishrepo"
	"takeout/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&accountrepo.AccountDTO{},
		&dishrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.ReviewDTO{},
		&orderrepo.StatusChangeDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
