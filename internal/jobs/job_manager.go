package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/notifications"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderFeedJob *OrderFeedJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the recent-orders query handler and the notification dispatcher
// as dependencies to wire up the feed.
func NewJobManager(
	recentOrdersHandler queries.GetRecentOrdersQueryHandler,
	dispatcher *notifications.Dispatcher,
	feedLimit int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderFeedJob: NewOrderFeedJob(recentOrdersHandler, dispatcher, feedLimit, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderFeedJob.Start(); err != nil {
		return fmt.Errorf("failed to start order feed job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderFeedJob.Stop()
}
