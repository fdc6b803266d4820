// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish staged domain events from
// the outbox table to the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepository, publisher, logger)
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
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the gap between a committed transaction
// and the corresponding broker message small.
//
// # Error Handling
//
// - A failed claim of an event means another relay instance took it; skipped
// - A failed publish increments the event's retry count and returns it to
// PENDING until the retry budget is exhausted, then parks it in FAILED
// - Claims older than the claim timeout are returned to PENDING at the start
// of every tick, so a relay crash between claim and publish cannot strand an
// event in PROCESSING
// - Failed job starts will stop any already running jobs
package jobs
