// Package notifications implements the staff-facing notification feed.
//
// The feed is built from two pieces. A FeedCursor watches successive
// snapshots of the recent order listing and emits one event per order it
// has not seen before, so a reordered or re-fetched listing never
// produces duplicate alerts. A Dispatcher keeps a bounded, newest-first
// window of notification records in memory, tracks which of them the
// staff has read, and invokes an optional alert callback for side
// effects like sounds or banners.
//
// Records are deliberately not persisted. The feed is an operational
// aid for whoever has the dashboard open; the orders themselves remain
// the source of truth and survive restarts.
package notifications
