package kernel_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, minorUnits int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromMinorUnits(minorUnits)
	require.NoError(t, err)
	return m
}

func TestNewPricingSnapshot(t *testing.T) {
	t.Run("should derive total from components", func(t *testing.T) {
		s, err := kernel.NewPricingSnapshot(
			money(t, 2500),
			decimal.NewFromInt(8),
			money(t, 200),
			money(t, 500),
			kernel.ZeroMoney(),
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, int64(3200), s.Total().MinorUnits())
		assert.Equal(t, int64(2500), s.Subtotal().MinorUnits())
		assert.Equal(t, int64(200), s.TaxAmount().MinorUnits())
		assert.Equal(t, int64(500), s.ShippingAmount().MinorUnits())
		assert.True(t, s.ExpenseAmount().IsZero())
	})

	t.Run("should include expense amount in total", func(t *testing.T) {
		s, err := kernel.NewPricingSnapshot(
			money(t, 10000),
			decimal.Zero,
			kernel.ZeroMoney(),
			kernel.ZeroMoney(),
			money(t, 7550),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(17550), s.Total().MinorUnits())
	})

	t.Run("should reject unconstructed component", func(t *testing.T) {
		var missing kernel.Money

		_, err := kernel.NewPricingSnapshot(missing, decimal.Zero,
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney())

		require.Error(t, err)
	})

	t.Run("should reject negative tax rate", func(t *testing.T) {
		_, err := kernel.NewPricingSnapshot(money(t, 100), decimal.NewFromInt(-8),
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney())

		require.ErrorIs(t, err, kernel.ErrRateIsNegative)
	})
}

func TestRestorePricingSnapshot(t *testing.T) {
	t.Run("should restore reconciling snapshot", func(t *testing.T) {
		s, err := kernel.RestorePricingSnapshot(
			money(t, 2500),
			decimal.NewFromInt(8),
			money(t, 200),
			money(t, 500),
			kernel.ZeroMoney(),
			money(t, 3200),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(3200), s.Total().MinorUnits())
	})

	t.Run("should fail on non-reconciling total", func(t *testing.T) {
		_, err := kernel.RestorePricingSnapshot(
			money(t, 2500),
			decimal.NewFromInt(8),
			money(t, 200),
			money(t, 500),
			kernel.ZeroMoney(),
			money(t, 3300),
		)

		require.ErrorIs(t, err, kernel.ErrPricingSnapshotInconsistent)
	})
}

func TestPricingSnapshot_WithExpenseAmount(t *testing.T) {
	t.Run("should recompute expense component and total", func(t *testing.T) {
		s, err := kernel.NewPricingSnapshot(
			money(t, 10000),
			decimal.NewFromInt(8),
			money(t, 800),
			kernel.ZeroMoney(),
			kernel.ZeroMoney(),
		)
		require.NoError(t, err)

		invoiced, err := s.WithExpenseAmount(money(t, 4500))

		require.NoError(t, err)
		assert.Equal(t, int64(4500), invoiced.ExpenseAmount().MinorUnits())
		assert.Equal(t, int64(15300), invoiced.Total().MinorUnits())
		// tax is never charged on reimbursed expenses
		assert.Equal(t, int64(800), invoiced.TaxAmount().MinorUnits())
		// the original snapshot is untouched
		assert.True(t, s.ExpenseAmount().IsZero())
		assert.Equal(t, int64(10800), s.Total().MinorUnits())
	})

	t.Run("should fail on zero value snapshot", func(t *testing.T) {
		var s kernel.PricingSnapshot

		_, err := s.WithExpenseAmount(money(t, 100))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPricingSnapshotIsNotConstructed, err)
	})
}

func TestPricingSnapshot_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var s kernel.PricingSnapshot

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPricingSnapshotIsNotConstructed, err)
	})
}
