package kernel_test

import (
	"strings"
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	t.Run("should generate number with prefix", func(t *testing.T) {
		n, err := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixOrder)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.True(t, strings.HasPrefix(n.String(), "ORD-"))
		assert.Equal(t, 3, len(strings.Split(n.String(), "-")))
	})

	t.Run("should generate unique numbers", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			n, err := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixService)
			require.NoError(t, err)
			assert.False(t, seen[n.String()], "duplicate order number %s", n)
			seen[n.String()] = true
		}
	})

	t.Run("should reject empty prefix", func(t *testing.T) {
		_, err := kernel.GenerateOrderNumber("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("should restore persisted number", func(t *testing.T) {
		n, err := kernel.OrderNumberFromString("ORD-20260830143015-9F2A41C7")

		require.NoError(t, err)
		assert.Equal(t, "ORD-20260830143015-9F2A41C7", n.String())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed token", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("not an order number")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var n kernel.OrderNumber

		err := n.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderNumberIsNotConstructed, err)
	})
}

func TestOrderNumber_IsEqual(t *testing.T) {
	a, _ := kernel.OrderNumberFromString("ORD-20260830143015-9F2A41C7")
	b, _ := kernel.OrderNumberFromString("ORD-20260830143015-9F2A41C7")
	c, _ := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixOrder)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
