package kernel

import (
	"errors"
	"fmt"
	"math"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places carried by every Money value.
// Amounts are stored as int64 minor units (cents), so 25.00 is stored as 2500.
const MoneyScale = 2

var (
	// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
	// Money must be created using NewMoneyFromMinorUnits, NewMoneyFromMajorUnits, or ZeroMoney.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"money must be created via NewMoneyFromMinorUnits, NewMoneyFromMajorUnits, or ZeroMoney constructors")

	// ErrMoneyOverflow indicates that an arithmetic result does not fit the
	// int64 minor-units representation.
	ErrMoneyOverflow = errors.New("money arithmetic overflows the minor-units representation")

	// ErrRateIsNegative indicates a negative percentage rate was supplied to ApplyRate.
	ErrRateIsNegative = errors.New("percentage rate must not be negative")
)

// Money is an immutable fixed-point monetary amount stored as int64 minor
// units with MoneyScale decimal places. All arithmetic is exact: addition and
// quantity multiplication operate on integers, and percentage rates are
// applied through decimal arithmetic with rounding only at the minor-unit
// boundary. Binary floating point is never used, so any sequence of
// operations yields identical results on every platform.
//
// Amounts are non-negative: carts, pricing snapshots, and expenses have no
// use for negative money, and rejecting it at construction keeps the
// non-negativity invariant local to this type.
//
// Example:
//
//	unitPrice, _ := kernel.NewMoneyFromMinorUnits(1000) // 10.00
//	lineTotal, _ := unitPrice.MultiplyByQuantity(2)     // 20.00
//	tax, _ := lineTotal.ApplyRate(decimal.NewFromInt(8)) // 1.60
type Money struct { //nolint:recvcheck //using for validation
	minorUnits int64
	guard      guard.ConstructorGuard
}

// NewMoneyFromMinorUnits creates a Money from an amount expressed in minor
// units (cents). Negative amounts are rejected.
func NewMoneyFromMinorUnits(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money amount", minorUnits, 0, int64(math.MaxInt64))
	}

	return Money{
		minorUnits: minorUnits,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromMajorUnits creates a Money from whole currency units, e.g.
// NewMoneyFromMajorUnits(25) is 25.00. Fails with ErrMoneyOverflow when the
// amount does not fit the minor-units representation.
func NewMoneyFromMajorUnits(majorUnits int64) (Money, error) {
	if majorUnits > math.MaxInt64/100 || majorUnits < 0 {
		if majorUnits < 0 {
			return Money{}, errs.NewValueIsOutOfRangeError("money amount", majorUnits, 0, int64(math.MaxInt64)/100)
		}
		return Money{}, ErrMoneyOverflow
	}

	return NewMoneyFromMinorUnits(majorUnits * 100)
}

// ZeroMoney returns a constructed zero amount. Used for absent shipping rates
// and the initial expense total of a freshly checked-out order.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// MinorUnits returns the amount in minor units (cents).
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// IsEqual compares two monetary amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.minorUnits == other.minorUnits
}

// Add returns the exact sum of two amounts.
// Fails with ErrMoneyOverflow if the sum does not fit int64 minor units.
// Money addition is associative and exact, so summation order never affects totals.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.minorUnits > math.MaxInt64-other.minorUnits {
		return Money{}, ErrMoneyOverflow
	}

	return NewMoneyFromMinorUnits(m.minorUnits + other.minorUnits)
}

// MultiplyByQuantity returns the amount multiplied by a positive integer
// quantity, as used for line totals (unit price times quantity or estimated
// hours). Fails with ErrMoneyOverflow when the product does not fit.
func (m Money) MultiplyByQuantity(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if quantity <= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}

	q := int64(quantity)
	if m.minorUnits != 0 && m.minorUnits > math.MaxInt64/q {
		return Money{}, ErrMoneyOverflow
	}

	return NewMoneyFromMinorUnits(m.minorUnits * q)
}

// ApplyRate returns the amount scaled by a percentage rate, e.g. an 8% tax on
// 25.00 yields 2.00. The computation multiplies the exact minor-units amount
// by the decimal rate and rounds the result half-up (away from zero) at the
// minor-unit boundary. Half-up is the fixed rounding policy for the whole
// engine; it is applied only here, never on intermediate values.
func (m Money) ApplyRate(ratePercent decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if ratePercent.IsNegative() {
		return Money{}, ErrRateIsNegative
	}

	// rate is a percentage: amount * rate / 100, computed exactly in decimal.
	product := decimal.New(m.minorUnits, 0).Mul(ratePercent).Shift(-2).Round(0)

	result := product.BigInt()
	if !result.IsInt64() {
		return Money{}, ErrMoneyOverflow
	}

	return NewMoneyFromMinorUnits(result.Int64())
}

// String formats the amount with MoneyScale decimal places, e.g. "25.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minorUnits/100, m.minorUnits%100)
}

// Validate checks that the Money was created through one of its constructors.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
