// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field and are
// started and stopped together through JobManager:
//
//	backlog := jobs.NewOrderBacklogJob(countHandler, metrics.NewOrderBacklog(reg), "", logger)
//	jobManager := jobs.NewJobManager(backlog)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderBacklogJob samples the number of orders per status into the
// takeout_orders_by_status gauge, every fifteen seconds by default.
package jobs
