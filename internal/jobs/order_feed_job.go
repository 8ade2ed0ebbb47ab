package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/notifications"

	"github.com/robfig/cron/v3"
)

// OrderFeedJob polls the recent order listing and turns newly observed
// orders into feed notifications. Runs every second so the dashboard
// learns about an order within a second of placement.
//
// The job owns its feed cursor, so the first poll after startup primes
// silently instead of announcing the whole order history.
type OrderFeedJob struct {
	handler    queries.GetRecentOrdersQueryHandler
	cursor     *notifications.FeedCursor
	dispatcher *notifications.Dispatcher
	feedLimit  int
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOrderFeedJob creates a job that feeds the notification dispatcher.
// feedLimit is the size of the polled window, matching the dashboard
// listing.
func NewOrderFeedJob(
	handler queries.GetRecentOrdersQueryHandler,
	dispatcher *notifications.Dispatcher,
	feedLimit int,
	logger *slog.Logger,
) *OrderFeedJob {
	return &OrderFeedJob{
		handler:    handler,
		cursor:     notifications.NewFeedCursor(),
		dispatcher: dispatcher,
		feedLimit:  feedLimit,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "order_feed_job"),
	}
}

// Start begins polling the order feed every second.
func (j *OrderFeedJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if err := j.poll(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order feed job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order feed job started (running every second)")
	return nil
}

// Stop stops the order feed job.
func (j *OrderFeedJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order feed job stopped")
}

func (j *OrderFeedJob) poll(ctx context.Context) error {
	query, err := queries.NewGetRecentOrdersQuery(j.feedLimit)
	if err != nil {
		return err
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	snapshot := make([]notifications.OrderSnapshot, 0, len(orders))
	for _, o := range orders {
		snapshot = append(snapshot, notifications.OrderSnapshot{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			TotalAmount:  o.TotalAmount,
		})
	}

	for _, event := range j.cursor.Diff(snapshot) {
		j.dispatcher.PublishNewOrder(event)
	}

	return nil
}
