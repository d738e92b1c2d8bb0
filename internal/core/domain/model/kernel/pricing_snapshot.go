package kernel

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPricingSnapshotIsNotConstructed is returned when attempting to use an
	// improperly initialized PricingSnapshot.
	ErrPricingSnapshotIsNotConstructed = errors.New(
		"PricingSnapshot must be created via NewPricingSnapshot or RestorePricingSnapshot")

	// ErrPricingSnapshotInconsistent indicates the persisted total does not
	// equal the sum of the snapshot's components. The engine never produces
	// such a snapshot, so hitting this error means corrupted data and is
	// treated as fatal by callers.
	ErrPricingSnapshotInconsistent = errors.New(
		"pricing snapshot total does not equal subtotal + tax + shipping + expenses")
)

// PricingSnapshot captures the priced totals of an order at checkout time:
// subtotal, applied tax rate and amount, shipping, reimbursed expenses
// (service orders only), and the grand total. It is immutable and owned by
// exactly one order; once assigned, it is never recomputed from live catalog
// data, so order totals survive later catalog price changes.
//
// The single deliberate exception is WithExpenseAmount, used when a service
// order is invoiced: expenses accrue after checkout, so the expense component
// and the total are re-derived there and nowhere else.
//
// Invariant: total = subtotal + taxAmount + shippingAmount + expenseAmount,
// with every component non-negative. NewPricingSnapshot establishes this by
// construction; RestorePricingSnapshot verifies it on data loaded from storage.
type PricingSnapshot struct { //nolint:recvcheck //using for validation
	subtotal       Money
	taxRate        decimal.Decimal
	taxAmount      Money
	shippingAmount Money
	expenseAmount  Money
	total          Money

	guard guard.ConstructorGuard
}

// NewPricingSnapshot creates a snapshot, deriving the total from its
// components so the reconciliation invariant holds by construction.
func NewPricingSnapshot(subtotal Money, taxRate decimal.Decimal, taxAmount, shippingAmount, expenseAmount Money) (PricingSnapshot, error) {
	if err := errors.Join(
		subtotal.Validate(),
		taxAmount.Validate(),
		shippingAmount.Validate(),
		expenseAmount.Validate(),
	); err != nil {
		return PricingSnapshot{}, err
	}

	if taxRate.IsNegative() {
		return PricingSnapshot{}, ErrRateIsNegative
	}

	total, err := sumMoney(subtotal, taxAmount, shippingAmount, expenseAmount)
	if err != nil {
		return PricingSnapshot{}, err
	}

	return PricingSnapshot{
		subtotal:       subtotal,
		taxRate:        taxRate,
		taxAmount:      taxAmount,
		shippingAmount: shippingAmount,
		expenseAmount:  expenseAmount,
		total:          total,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestorePricingSnapshot reconstructs a snapshot from persistence, verifying
// the reconciliation invariant against the stored total. A mismatch yields
// ErrPricingSnapshotInconsistent and must never be swallowed by callers.
func RestorePricingSnapshot(subtotal Money, taxRate decimal.Decimal, taxAmount, shippingAmount, expenseAmount, total Money) (PricingSnapshot, error) {
	snapshot, err := NewPricingSnapshot(subtotal, taxRate, taxAmount, shippingAmount, expenseAmount)
	if err != nil {
		return PricingSnapshot{}, err
	}

	if err = total.Validate(); err != nil {
		return PricingSnapshot{}, err
	}

	if !snapshot.total.IsEqual(total) {
		return PricingSnapshot{}, fmt.Errorf("%w: stored total is %s, components sum to %s",
			ErrPricingSnapshotInconsistent, total, snapshot.total)
	}

	return snapshot, nil
}

// WithExpenseAmount returns a copy of the snapshot with the expense component
// replaced and the total re-derived. This is the one sanctioned recompute
// point in the engine, invoked by ServiceOrder.Invoice once all expenses are
// decided; every other totals read uses the frozen values.
func (s PricingSnapshot) WithExpenseAmount(expenseAmount Money) (PricingSnapshot, error) {
	if err := s.Validate(); err != nil {
		return PricingSnapshot{}, err
	}

	return NewPricingSnapshot(s.subtotal, s.taxRate, s.taxAmount, s.shippingAmount, expenseAmount)
}

// Subtotal returns the sum of frozen line totals.
func (s PricingSnapshot) Subtotal() Money {
	return s.subtotal
}

// TaxRate returns the combined percentage tax rate applied at checkout.
func (s PricingSnapshot) TaxRate() decimal.Decimal {
	return s.taxRate
}

// TaxAmount returns the tax charged on the merchandise/labor subtotal.
// Reimbursed expenses are never taxed.
func (s PricingSnapshot) TaxAmount() Money {
	return s.taxAmount
}

// ShippingAmount returns the shipping charge captured at checkout.
func (s PricingSnapshot) ShippingAmount() Money {
	return s.shippingAmount
}

// ExpenseAmount returns the reimbursed expense total. Zero for product orders
// and for service orders not yet invoiced.
func (s PricingSnapshot) ExpenseAmount() Money {
	return s.expenseAmount
}

// Total returns the grand total: subtotal + tax + shipping + expenses.
func (s PricingSnapshot) Total() Money {
	return s.total
}

// Validate checks construction and re-verifies the reconciliation invariant.
func (s PricingSnapshot) Validate() error {
	if err := s.guard.Validate(ErrPricingSnapshotIsNotConstructed); err != nil {
		return err
	}

	expected, err := sumMoney(s.subtotal, s.taxAmount, s.shippingAmount, s.expenseAmount)
	if err != nil {
		return err
	}

	if !s.total.IsEqual(expected) {
		return fmt.Errorf("%w: total is %s, components sum to %s",
			ErrPricingSnapshotInconsistent, s.total, expected)
	}

	return nil
}

// sumMoney adds amounts left to right. Money addition is exact and
// associative, so the order of summation cannot change the result.
func sumMoney(amounts ...Money) (Money, error) {
	total := ZeroMoney()
	for _, amount := range amounts {
		var err error
		total, err = total.Add(amount)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
