// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that do not belong to a request cycle.
//
// # Available Jobs
//
// 1. LowStockReportJob - Runs every hour to report materials at or below their minimum stock level
//
// 2. OverdueOrdersReportJob - Runs every hour to report active orders whose schedule window has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(lowStockHandler, orderRepository, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The low-stock report job uses the cron expression "0 0 * * * *" which means
// it runs at the top of every hour. Stock levels only drift as orders are
// created, updated or cancelled, so an hourly cadence is enough for the
// warehouse team. The overdue order report job runs at half past every hour
// ("0 30 * * * *") so the two reports never land in the same log window.
//
// # Error Handling
//
// - Query and repository failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
