package cmd

import (
	"takeout/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel)

		gormDB, pool, err := openDatabases(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()
		defer closeGorm(gormDB)

		if err = postgres.Migrate(cmd.Context(), gormDB); err != nil {
			return err
		}
		logger.Info("schema migrated", "tables", len(postgres.Models()))
		return nil
	},
}
