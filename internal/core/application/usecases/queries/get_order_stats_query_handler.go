package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes order statistics from the database.
// The numbers are recomputed from the full order history on every call
// rather than kept as running counters, so they always agree with the
// stored orders.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query to compute per-status counts and revenue.
// Revenue sums the totals of completed orders only.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(total_amount), 0)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, classifyStoreError(err)
	}
	defer rows.Close()

	var stats GetOrderStatsQueryResponse

	for rows.Next() {
		var status string
		var count, amount int

		if err = rows.Scan(&status, &count, &amount); err != nil {
			return GetOrderStatsQueryResponse{}, classifyStoreError(err)
		}

		stats.TotalOrders += count

		switch status {
		case order.Pending.String():
			stats.Pending = count
		case order.Processing.String():
			stats.Processing = count
		case order.Completed.String():
			stats.Completed = count
			stats.Revenue = amount
		case order.Cancelled.String():
			stats.Cancelled = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, classifyStoreError(err)
	}

	return stats, nil
}
