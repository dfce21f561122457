package jobs

import (
	"context"
	"log/slog"
	"time"

	"takeout/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule samples every fifteen seconds.
const DefaultBacklogSchedule = "*/15 * * * * *"

const sampleTimeout = 5 * time.Second

type statusCounter interface {
	Handle(ctx context.Context) (map[order.Status]int64, error)
}

// OrderBacklogJob periodically publishes the number of orders in each
// status to a gauge labelled by status name.
type OrderBacklogJob struct {
	counter  statusCounter
	gauge    *prometheus.GaugeVec
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderBacklogJob(
	counter statusCounter,
	gauge *prometheus.GaugeVec,
	schedule string,
	logger *slog.Logger,
) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

func (j *OrderBacklogJob) Name() string { return "order backlog" }

// Start samples once immediately and then on every tick of the schedule.
func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}

func (j *OrderBacklogJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sampleTimeout)
	defer cancel()

	if err := j.Sample(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order backlog sampling failed", "error", err)
	}
}

// Sample reads the current counts and sets the gauge. On error the gauge
// keeps its previous values.
func (j *OrderBacklogJob) Sample(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx)
	if err != nil {
		return err
	}
	for status, n := range counts {
		j.gauge.WithLabelValues(status.String()).Set(float64(n))
	}
	return nil
}
