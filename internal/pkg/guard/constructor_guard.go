// Package guard implements the constructor guard pattern used by commands and
// queries to ensure they are only created through their designated constructor
// functions, never as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided. This ensures validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was properly initialized through
// its constructor or created as a zero value. Embedding a ConstructorGuard in
// a command or query and calling Validate before handling prevents accidental
// use of unvalidated zero-value instances.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    customerName string
//
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(customerName string) (PlaceOrderCommand, error) {
//	    if customerName == "" {
//	        return PlaceOrderCommand{}, errs.NewValueIsRequiredError("customerName")
//	    }
//	    return PlaceOrderCommand{
//	        customerName: customerName,
//	        guard:        guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call this in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects, the provided
// validationError for zero values, or ErrDefaultConstructorGuard if
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
