// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle automation.
//
// # Available Jobs
//
// 1. AutomationJob - Runs every minute to scan for orders stuck awaiting
// payment or stuck in transit, raising deduplicated alerts.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(automationHandler, logger)
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
// The automation job uses the cron expression "* * * * *" (every minute)
// and additionally runs once at startup. Ticks are wrapped with
// SkipIfStillRunning so a long scan suppresses the next tick rather than
// overlapping it.
//
// # Error Handling
//
// A failed scan is logged and the schedule continues; individual rule
// failures inside a scan are isolated from each other by the command
// handler.
package jobs
