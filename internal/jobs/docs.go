// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipping service.
//
// # Available Jobs
//
// 1. TrackingProgressionJob - Runs every minute to advance finalized
// shipments through their transit milestones until delivery
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, recordTrackingEventHandler, logger)
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
// The tracking progression job uses the cron expression "0 * * * * *",
// running at the top of every minute. Each tick moves every undelivered
// finalized shipment one milestone forward, so a shipment reaches
// "Delivered" a few minutes after it was finalized.
//
// # Error Handling
//
// - Already-delivered shipments are skipped without logging
// - Per-shipment failures are logged and do not stop the sweep
// - Failed job starts will stop any already running jobs
package jobs
