package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves aggregate order statistics for the
// dashboard header: per-status counts and total revenue.
//
// Example:
//
//	query := queries.NewGetOrderStatsQuery()
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order stats: %w", err)
//	}
//	fmt.Printf("%d orders, %d revenue\n", stats.TotalOrders, stats.Revenue)
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for aggregate order statistics.
// This is a parameterless query over the whole order history.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse represents the dashboard statistics.
// Revenue counts completed orders only: pending and processing money is
// not yet earned, cancelled money never will be.
type GetOrderStatsQueryResponse struct {
	TotalOrders int
	Pending     int
	Processing  int
	Completed   int
	Cancelled   int
	Revenue     int
}
