// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that domain aggregates are composed of.
//
// The package currently provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid,
//     with constructor-enforced validity (zero values fail Validate)
//
// Value objects in this package are immutable, compared by value, and safe for
// concurrent use.
package kernel
