package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store must support atomic single-record create/read/update and an
// ordered range read by creation time; nothing else is assumed of it.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The insert is atomic: either the fully-formed order appears or none
	// does. A duplicate identifier is reported as a concurrency conflict,
	// which makes client-generated identifiers double as deduplication
	// tokens for retried submissions.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate's status change conditionally on the
	// version the aggregate was loaded with. If a concurrent writer got
	// there first, the update affects no rows and a ConcurrencyConflictError
	// is returned; the caller's change is never silently lost or applied
	// over stale state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetRecent retrieves at most limit orders sorted by creation time
	// descending, most recent first. This is the read path behind the
	// dashboard listing and the notification feed.
	GetRecent(ctx context.Context, limit int) ([]*order.Order, error)
}
