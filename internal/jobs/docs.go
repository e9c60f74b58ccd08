// Package jobs provides scheduled background tasks for the exchange system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. StaleRequestSweepJob - Runs every minute to reject pending exchange
// requests that outlived the configured TTL, releasing requesters who would
// otherwise wait on a silent provider forever.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager, err := jobs.NewJobManager(expireHandler, requestTTL, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
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
// Sweep failures are logged and retried on the next tick; a failed sweep
// never stops the scheduler.
package jobs
