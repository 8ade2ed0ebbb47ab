package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a placed customer order. It is the aggregate root that
// manages the order lifecycle from submission through fulfillment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer name, phone, and delivery address are required
//   - Must contain at least one line
//   - Total amount equals the sum of line subtotals at creation time and is
//     never recomputed from current menu prices afterwards
//   - PlacedAt is assigned once at creation and is immutable
//   - Status only moves forward along the legal transition graph
//   - Only status (and the concurrency version) mutate post-creation
//
// The version field implements per-order optimistic concurrency: every status
// change increments it, and the store applies updates conditionally on the
// version it read, so two racing transitions can never both succeed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName and customerPhone identify the customer (required)
	customerName  string
	customerPhone string

	// customerEmail is optional contact information
	customerEmail string

	// deliveryAddress is the free-form delivery destination (required)
	deliveryAddress string

	// lines are the menu selections snapshotted at submit time
	lines []Line

	// totalAmount is the authoritative charge, fixed at creation
	totalAmount int

	// status represents the current state in the order lifecycle
	status Status

	// placedAt is the creation timestamp, assigned once
	placedAt time.Time

	// version is the optimistic concurrency counter, starting at 1
	version int

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way new
// orders enter the system; the persistence layer rehydrates existing records
// through RestoreOrder instead.
//
// Validations:
//   - id must be a constructed UUID
//   - customerName, customerPhone, deliveryAddress must be non-empty
//   - lines must be non-empty and individually valid
//   - totalAmount must equal the recomputed sum of line subtotals; a mismatch
//     is rejected so a tampered or stale total is never persisted
//
// The new order starts in Pending status with placedAt set to the current
// time and version 1. The lines slice is copied, so later mutation of the
// caller's slice cannot alter the order.
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	deliveryAddress string,
	lines []Line,
	totalAmount int,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		placedAt:      time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryAddress(deliveryAddress),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}
	o.customerEmail = customerEmail

	if err := o.setTotalAmount(totalAmount); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence without re-running the
// creation-time checks that only apply to new submissions. The structural
// invariants (identity, required fields, non-empty lines, valid status) are
// still enforced so corrupt rows cannot produce invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	deliveryAddress string,
	lines []Line,
	totalAmount int,
	status Status,
	placedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		customerEmail: customerEmail,
		totalAmount:   totalAmount,
		placedAt:      placedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryAddress(deliveryAddress),
		o.setLines(lines),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerEmail returns the customer's email, empty when not provided.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Lines returns a copy of the order's menu selections.
// The copy keeps the aggregate's snapshot immutable from the outside.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalAmount returns the authoritative charge fixed at creation.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus transitions the order to the target status.
//
// The transition is validated against the legal transition table; an illegal
// pair (including any transition out of a terminal status) is rejected with
// an IllegalTransitionError carrying both statuses. On success the version
// is incremented so the store can apply the mutation conditionally.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.version++
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

// setCustomerPhone validates and sets the customer phone.
func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	o.customerPhone = phone
	return nil
}

// setDeliveryAddress validates and sets the delivery destination.
func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

// setLines validates and copies the menu selections.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// setStatus validates and sets the status during rehydration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setTotalAmount checks the creation-time invariant that the supplied total
// equals the sum of line subtotals, then fixes it on the aggregate.
func (o *Order) setTotalAmount(total int) error {
	sum := 0
	for _, line := range o.lines {
		sum += line.Subtotal()
	}
	if total != sum {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%d does not match the sum of line subtotals %d", total, sum),
		)
	}
	o.totalAmount = total
	return nil
}
