package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "takeout",
	Short: "Food delivery marketplace service",
	Long: `takeout connects customers, merchants and delivery men: customers order
from a merchant's menu, merchants confirm and hand orders to couriers, and
couriers claim, deliver and get reviewed.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (env and .env are always read)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, exportSalesCmd)
}

// Execute runs the command selected on the command line.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (Config, error) {
	return LoadConfig(viper.GetViper(), cfgFile)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// openDatabases connects gorm for the write side and a pgx pool for the
// read side.
func openDatabases(ctx context.Context, cfg Config) (*gorm.DB, *pgxpool.Pool, error) {
	gormDB, err := gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		closeGorm(gormDB)
		return nil, nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		closeGorm(gormDB)
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return gormDB, pool, nil
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
