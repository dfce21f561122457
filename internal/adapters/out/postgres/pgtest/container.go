// Package pgtest starts a throwaway Postgres for integration suites.
package pgtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables are truncated between tests, children cascade from orders.
const truncateAll = "TRUNCATE TABLE order_status_history, reviews, order_items, orders, dishes, accounts"

// Database is a running container plus the two client flavours the service
// uses: gorm for writes and a pgx pool for reads.
type Database struct {
	Container *postgres.PostgresContainer
	Gorm      *gorm.DB
	Pool      *pgxpool.Pool
}

// Start runs postgres:15-alpine and opens both clients. migrate is applied
// through gorm before Start returns.
func Start(ctx context.Context, migrate func(context.Context, *gorm.DB) error) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	db := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		db.Close(ctx)
		return nil, err
	}

	db.Gorm, err = gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		db.Close(ctx)
		return nil, err
	}

	db.Pool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		db.Close(ctx)
		return nil, err
	}

	if migrate != nil {
		if err = migrate(ctx, db.Gorm); err != nil {
			db.Close(ctx)
			return nil, err
		}
	}

	return db, nil
}

// Reset empties every table.
func (d *Database) Reset() error {
	return d.Gorm.Exec(truncateAll).Error
}

func (d *Database) Close(ctx context.Context) {
	if d.Pool != nil {
		d.Pool.Close()
	}
	if d.Container != nil {
		_ = d.Container.Terminate(ctx)
	}
}
