package notifications

import (
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderSnapshot is the slice of an order the feed cares about.
type OrderSnapshot struct {
	ID           kernel.UUID
	CustomerName string
	TotalAmount  int
}

// NewOrderEvent signals that an order appeared in the feed for the
// first time.
type NewOrderEvent struct {
	OrderID      kernel.UUID
	CustomerName string
	TotalAmount  int
}

// FeedCursor tracks which orders a single feed session observed in its
// previous snapshot. Diffing is a true set difference by order
// identifier (current minus previous), so reorders within the window
// emit nothing. The cursor retains only the previous snapshot's ids,
// keeping its memory bounded by the window size. The listing is newest
// first over an append-only store, so an order that left the window
// never returns to it and is never announced twice.
//
// Each session owns its cursor. A freshly opened dashboard must not be
// greeted with an alert for every historical order, so the first
// snapshot primes the cursor silently.
//
// A FeedCursor is not safe for concurrent use.
type FeedCursor struct {
	previous map[uuid.UUID]struct{}
	primed   bool
}

// NewFeedCursor creates an unprimed cursor.
func NewFeedCursor() *FeedCursor {
	return &FeedCursor{
		previous: make(map[uuid.UUID]struct{}),
	}
}

// Diff compares the snapshot against the previous one and returns one
// event per newly observed order, in snapshot order. The snapshot then
// replaces the previous one wholesale; ids that dropped out of the
// window are forgotten.
//
// The first call primes the cursor and returns no events.
func (c *FeedCursor) Diff(snapshot []OrderSnapshot) []NewOrderEvent {
	current := make(map[uuid.UUID]struct{}, len(snapshot))
	for _, o := range snapshot {
		current[o.ID.Bytes()] = struct{}{}
	}

	if !c.primed {
		c.previous = current
		c.primed = true
		return nil
	}

	var events []NewOrderEvent
	for _, o := range snapshot {
		if _, ok := c.previous[o.ID.Bytes()]; ok {
			continue
		}
		events = append(events, NewOrderEvent{
			OrderID:      o.ID,
			CustomerName: o.CustomerName,
			TotalAmount:  o.TotalAmount,
		})
	}

	c.previous = current
	return events
}
