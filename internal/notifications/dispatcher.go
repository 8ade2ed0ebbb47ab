package notifications

import (
	"fmt"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// DefaultWindowSize is the number of records the feed retains.
const DefaultWindowSize = 10

// RecordKind classifies a notification record.
type RecordKind string

const (
	KindNewOrder     RecordKind = "new_order"
	KindStatusChange RecordKind = "status_change"
)

// Record is a single entry in the notification feed.
type Record struct {
	id        kernel.UUID
	kind      RecordKind
	title     string
	message   string
	orderID   kernel.UUID
	createdAt time.Time
	read      bool
}

// ID returns the record's identifier.
func (r Record) ID() kernel.UUID {
	return r.id
}

// Kind returns the record's classification.
func (r Record) Kind() RecordKind {
	return r.kind
}

// Title returns the short heading shown in the feed.
func (r Record) Title() string {
	return r.title
}

// Message returns the record's display text.
func (r Record) Message() string {
	return r.message
}

// OrderID returns the order this record refers to.
func (r Record) OrderID() kernel.UUID {
	return r.orderID
}

// CreatedAt returns when the record was published.
func (r Record) CreatedAt() time.Time {
	return r.createdAt
}

// IsRead reports whether the staff has acknowledged the record.
func (r Record) IsRead() bool {
	return r.read
}

// AlertFunc receives every freshly published record. Implementations
// drive side effects such as a notification sound or a banner. The
// callback runs synchronously under the dispatcher's lock, so it must
// not call back into the dispatcher.
type AlertFunc func(Record)

// Dispatcher keeps the rolling notification window and the read state
// of its records. Safe for concurrent use: the feed job publishes while
// HTTP handlers read and acknowledge.
type Dispatcher struct {
	mu      sync.Mutex
	records []Record
	limit   int
	alert   AlertFunc
}

// NewDispatcher creates a dispatcher retaining at most limit records.
// Non-positive limits fall back to DefaultWindowSize. alert may be nil.
func NewDispatcher(limit int, alert AlertFunc) *Dispatcher {
	if limit <= 0 {
		limit = DefaultWindowSize
	}

	return &Dispatcher{
		records: make([]Record, 0, limit),
		limit:   limit,
		alert:   alert,
	}
}

// PublishNewOrder adds a new-order record to the feed.
func (d *Dispatcher) PublishNewOrder(event NewOrderEvent) Record {
	return d.publish(Record{
		id:        kernel.NewUUID(),
		kind:      KindNewOrder,
		title:     "New Order!",
		message:   fmt.Sprintf("%s placed an order of %d", event.CustomerName, event.TotalAmount),
		orderID:   event.OrderID,
		createdAt: time.Now().UTC(),
	})
}

// PublishStatusChange adds a status-change record to the feed.
func (d *Dispatcher) PublishStatusChange(orderID kernel.UUID, customerName, status string) Record {
	return d.publish(Record{
		id:        kernel.NewUUID(),
		kind:      KindStatusChange,
		title:     "Order Update",
		message:   fmt.Sprintf("Order for %s is now %s", customerName, status),
		orderID:   orderID,
		createdAt: time.Now().UTC(),
	})
}

func (d *Dispatcher) publish(record Record) Record {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.records = append([]Record{record}, d.records...)
	if len(d.records) > d.limit {
		d.records = d.records[:d.limit]
	}

	if d.alert != nil {
		d.alert(record)
	}

	return record
}

// Records returns a snapshot of the feed, newest first.
func (d *Dispatcher) Records() []Record {
	d.mu.Lock()
	defer d.mu.Unlock()

	snapshot := make([]Record, len(d.records))
	copy(snapshot, d.records)
	return snapshot
}

// UnreadCount returns the number of unacknowledged records.
func (d *Dispatcher) UnreadCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, r := range d.records {
		if !r.read {
			count++
		}
	}
	return count
}

// Acknowledge marks the record as read and returns the order it refers
// to, letting the caller jump to that order. Returns an
// ObjectNotFoundError when the record has already left the window.
func (d *Dispatcher) Acknowledge(id kernel.UUID) (kernel.UUID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, r := range d.records {
		if r.id.IsEqual(id) {
			d.records[i].read = true
			return r.orderID, nil
		}
	}

	return kernel.UUID{}, errs.NewObjectNotFoundError("notificationId", id.String())
}

// AcknowledgeAll marks every record in the window as read.
func (d *Dispatcher) AcknowledgeAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.records {
		d.records[i].read = true
	}
}
