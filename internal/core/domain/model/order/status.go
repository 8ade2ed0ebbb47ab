package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders only move forward along the fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │             │
//	   └──> Cancelled <──┘
//
// Completed and Cancelled are terminal: no transition reopens them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are waiting for the kitchen to accept them.
	Pending

	// Processing indicates the kitchen has accepted the order and is
	// preparing it.
	Processing

	// Completed indicates the order has been fulfilled.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was called off before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings double as the persisted representation, so they stay lowercase.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getLegalTransitions returns the legal transition table.
// Any (from, to) pair absent from this table is rejected, never coerced.
func getLegalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Completed, Cancelled},
	}
}

// StatusFromString parses a persisted or transported status string.
// Returns an error for anything outside the four valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Processing, Completed, Cancelled.
func (s Status) Validate() error {
	switch s {
	case Pending, Processing, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the (s, target) pair is in the legal
// transition table, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getLegalTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target.
//
// Returns:
//   - (target, nil) when the pair is in the legal transition table
//   - (Unknown, IllegalTransitionError) otherwise, carrying both the
//     current and the attempted status
//
// Transitions out of Completed or Cancelled always fail, as does any pair
// not listed in the table (including pending -> completed).
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}
