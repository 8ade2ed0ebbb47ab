// Package queries contains read-only operations for the order dashboard.
// Implements the Query side of the CQRS architecture: handlers read
// straight from the database and return plain response structs, bypassing
// the aggregate restore path that writes go through.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetRecentOrdersQueryIsNotConstructed = errors.New(
		"GetRecentOrdersQuery must be created via NewGetRecentOrdersQuery constructor",
	)
)

// GetRecentOrdersQuery retrieves the most recent orders for the dashboard
// listing, newest first.
//
// Example:
//
//	query, err := queries.NewGetRecentOrdersQuery(50)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetRecentOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentOrdersQuery creates a query for the most recent orders.
// limit caps the result size and must be positive; the dashboard uses 50.
func NewGetRecentOrdersQuery(limit int) (GetRecentOrdersQuery, error) {
	if limit <= 0 {
		return GetRecentOrdersQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetRecentOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOrdersQueryIsNotConstructed)
}

// Limit returns the maximum number of orders to return.
func (q GetRecentOrdersQuery) Limit() int {
	return q.limit
}

// OrderLineResponse represents one menu selection within an order response.
type OrderLineResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  int
	Quantity   int
}

// OrderResponse represents a full order as shown on the dashboard:
// customer contact details, the ordered selections, the total, the
// lifecycle status and the placement time.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	Lines           []OrderLineResponse
	TotalAmount     int
	Status          string
	PlacedAt        time.Time
}
