package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain entities and aggregates are only created
// through their designated constructor functions. A zero-value struct carries a
// zero-value guard and therefore fails validation, which prevents bypassing the
// invariant checks those constructors perform.
//
// The aggregates in this system (Cart, Order, ServiceOrder) and their owned
// entities embed a ConstructorGuard so that objects reconstructed from
// persistence can be distinguished from structs that were never validated.
//
// Example usage:
//
//	var ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewExpense")
//
//	type Expense struct {
//	    id     kernel.UUID
//	    amount kernel.Money
//	    guard  kernel.ConstructorGuard
//	}
//
//	func NewExpense(id kernel.UUID, amount kernel.Money) (*Expense, error) {
//	    if err := errors.Join(id.Validate(), amount.Validate()); err != nil {
//	        return nil, err
//	    }
//	    return &Expense{id: id, amount: amount, guard: kernel.NewConstructorGuard()}, nil
//	}
//
//	func (e *Expense) Validate() error {
//	    return e.guard.Validate(ErrExpenseIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a new ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain objects
// to ensure they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value (not through the constructor),
// this method returns the provided validation error. If validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
