// Package guard provides a defensive construction check for application-layer
// value objects such as commands and queries. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable, so handlers can reject objects
// that bypassed their factory constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// supplied and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, which distinguishes constructor-built objects from
// zero-value structs.
//
// Example usage:
//
//	type CheckoutCommand struct {
//	    cartID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewCheckoutCommand(cartID kernel.UUID) (CheckoutCommand, error) {
//	    if err := cartID.Validate(); err != nil {
//	        return CheckoutCommand{}, err
//	    }
//	    return CheckoutCommand{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CheckoutCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
