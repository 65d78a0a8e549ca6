// Package guard lets value types detect whether they were built by their
// constructor or are an unusable zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries. Its zero value reports
// "not constructed"; only NewConstructorGuard produces a passing guard.
//
// Example:
//
//	type SetDeliveryStatusCommand struct {
//	    deliveryID kernel.UUID
//	    status     delivery.Status
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c SetDeliveryStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrSetDeliveryStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
