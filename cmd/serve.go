package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"takeout/api"
	httpin "takeout/internal/adapters/in/http"
	"takeout/internal/adapters/out/postgres"
	"takeout/internal/jobs"
	"takeout/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "migrate the schema before serving")
}

func serve(ctx context.Context, cfg Config) error {
	logger := newLogger(cfg.LogLevel)

	gormDB, pool, err := openDatabases(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	defer closeGorm(gormDB)

	if autoMigrate {
		if err = postgres.Migrate(ctx, gormDB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	publisher, closer, err := NewEventPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logger.Error("close event publisher", "error", cerr)
		}
	}()

	images, err := NewImageStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("image storage: %w", err)
	}

	app := NewCompositionRoot(gormDB, pool, publisher, images, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	jobManager := jobs.NewJobManager(
		jobs.NewOrderBacklogJob(
			app.CreateCountOrdersByStatusQueryHandler(),
			metrics.NewOrderBacklog(registry),
			cfg.BacklogSchedule,
			logger,
		),
	)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	doc, err := api.GetSwagger()
	if err != nil {
		return err
	}
	if err = api.RegisterDocs(doc); err != nil {
		return err
	}

	e, err := httpin.NewRouter(httpin.NewServer(app.HTTPHandlers(), logger), httpin.RouterConfig{
		Doc:      doc,
		Metrics:  metrics.NewServerMetrics(registry),
		Gatherer: registry,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", cfg.HTTPPort, "events", cfg.EventsPublisher)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
