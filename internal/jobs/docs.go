// Package jobs provides scheduled background tasks for the restaurant
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations behind the staff dashboard.
//
// # Available Jobs
//
// 1. OrderFeedJob - Runs every second to poll the recent order listing and
// publish notifications for orders that appear for the first time
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(recentOrdersHandler, dispatcher, feedLimit, logger)
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
// The feed job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the dashboard notification feed close
// to real time without a push channel.
//
// # Error Handling
//
// Poll failures are logged and the next tick retries from scratch; the
// feed cursor only advances on successful polls, so a missed poll never
// drops a new-order notification.
package jobs
