// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order lifecycle requires.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to fail pending orders that no
// restaurant has accepted within the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(failStaleOrdersHandler, maxPendingAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sweep logs failures and retries on the next tick; it never stops
// - Orders that race with a concurrent status change are skipped silently
// - Failed job starts will stop any already running jobs
package jobs
