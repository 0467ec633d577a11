// Package guard provides ConstructorGuard, a marker that lets value objects,
// aggregates, commands and queries detect that they were built as a zero value
// instead of through their validating constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as an unexported field and set only by the owning
// constructor:
//
//	type Recipient struct {
//	    name  string
//	    phone string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRecipient(name, phone string) (Recipient, error) {
//	    // validation...
//	    return Recipient{name: name, phone: phone, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Recipient) Validate() error {
//	    return r.guard.Validate(ErrRecipientIsNotConstructed)
//	}
//
// The guard is immutable and safe to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
