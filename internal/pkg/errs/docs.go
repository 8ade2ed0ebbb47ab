// Package errs provides standardized error types for the restaurant ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the generic validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is out of bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and for the order-lifecycle scenarios specific to this domain:
//   - BelowMinimumError: For when an order total does not reach the
//     configured minimum order amount (carries the shortfall)
//   - IllegalTransitionError: For status changes outside the legal
//     transition table (carries current and attempted status)
//   - ConcurrencyConflictError: For updates that lost a race against a
//     concurrent writer on the same order record
//   - StoreUnavailableError: For transient persistence failures; the only
//     kind callers may retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies by sentinel
//
// This standardized approach keeps error classification uniform across the
// HTTP layer, the application handlers, and the persistence adapters.
package errs
