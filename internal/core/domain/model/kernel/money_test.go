package kernel_test

import (
	"math"
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromMinorUnits(t *testing.T) {
	t.Run("should create money from minor units", func(t *testing.T) {
		m, err := kernel.NewMoneyFromMinorUnits(2500)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(2500), m.MinorUnits())
		assert.Equal(t, "25.00", m.String())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoneyFromMinorUnits(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromMinorUnits(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewMoneyFromMajorUnits(t *testing.T) {
	t.Run("should create money from major units", func(t *testing.T) {
		m, err := kernel.NewMoneyFromMajorUnits(10)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), m.MinorUnits())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromMajorUnits(-10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with overflow on huge amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromMajorUnits(math.MaxInt64 / 10)

		require.ErrorIs(t, err, kernel.ErrMoneyOverflow)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should pass for constructed money", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromMinorUnits(100)
		require.NoError(t, m.Validate())
	})

	t.Run("should pass for zero money constructor", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})

	t.Run("should fail for zero value struct", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add exactly", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromMinorUnits(1050)
		b, _ := kernel.NewMoneyFromMinorUnits(995)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(2045), sum.MinorUnits())
	})

	t.Run("should be associative regardless of order", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromMinorUnits(333)
		b, _ := kernel.NewMoneyFromMinorUnits(667)
		c, _ := kernel.NewMoneyFromMinorUnits(12345)

		ab, _ := a.Add(b)
		left, _ := ab.Add(c)
		bc, _ := b.Add(c)
		right, _ := a.Add(bc)

		assert.True(t, left.IsEqual(right))
	})

	t.Run("should fail with overflow", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromMinorUnits(math.MaxInt64)
		b, _ := kernel.NewMoneyFromMinorUnits(1)

		_, err := a.Add(b)

		require.ErrorIs(t, err, kernel.ErrMoneyOverflow)
	})

	t.Run("should fail on unconstructed operand", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromMinorUnits(100)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestMoney_MultiplyByQuantity(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoneyFromMinorUnits(1000)

		total, err := unitPrice.MultiplyByQuantity(2)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), total.MinorUnits())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoneyFromMinorUnits(1000)

		_, err := unitPrice.MultiplyByQuantity(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoneyFromMinorUnits(1000)

		_, err := unitPrice.MultiplyByQuantity(-3)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with overflow", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoneyFromMinorUnits(math.MaxInt64 / 2)

		_, err := unitPrice.MultiplyByQuantity(3)

		require.ErrorIs(t, err, kernel.ErrMoneyOverflow)
	})
}

func TestMoney_ApplyRate(t *testing.T) {
	t.Run("should apply percentage rate exactly", func(t *testing.T) {
		subtotal, _ := kernel.NewMoneyFromMinorUnits(2500) // 25.00

		tax, err := subtotal.ApplyRate(decimal.NewFromInt(8))

		require.NoError(t, err)
		assert.Equal(t, int64(200), tax.MinorUnits()) // 2.00
	})

	t.Run("should round half-up at the cent boundary", func(t *testing.T) {
		// 10.01 * 7.5% = 0.750750 -> 0.75
		amount, _ := kernel.NewMoneyFromMinorUnits(1001)
		rate := decimal.RequireFromString("7.5")

		tax, err := amount.ApplyRate(rate)

		require.NoError(t, err)
		assert.Equal(t, int64(75), tax.MinorUnits())

		// 0.10 * 2.5% = 0.0025 -> rounds up to 0.01
		small, _ := kernel.NewMoneyFromMinorUnits(10)
		tax, err = small.ApplyRate(decimal.RequireFromString("2.5"))

		require.NoError(t, err)
		assert.Equal(t, int64(1), tax.MinorUnits())
	})

	t.Run("should be deterministic for identical inputs", func(t *testing.T) {
		amount, _ := kernel.NewMoneyFromMinorUnits(123456789)
		rate := decimal.RequireFromString("8.25")

		first, err := amount.ApplyRate(rate)
		require.NoError(t, err)
		second, err := amount.ApplyRate(rate)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("should apply zero rate", func(t *testing.T) {
		amount, _ := kernel.NewMoneyFromMinorUnits(2500)

		tax, err := amount.ApplyRate(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, tax.IsZero())
	})

	t.Run("should reject negative rate", func(t *testing.T) {
		amount, _ := kernel.NewMoneyFromMinorUnits(2500)

		_, err := amount.ApplyRate(decimal.NewFromInt(-5))

		require.ErrorIs(t, err, kernel.ErrRateIsNegative)
	})
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		minorUnits int64
		expected   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{100, "1.00"},
		{3200, "32.00"},
		{99999, "999.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			m, err := kernel.NewMoneyFromMinorUnits(tc.minorUnits)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		})
	}
}
