package cart_test

import (
	"testing"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create line item with valid parameters", func(t *testing.T) {
		catalogItemID := kernel.NewUUID()

		item, err := cart.NewLineItem(catalogItemID, 3, money(t, 1250))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.CatalogItemID().IsEqual(catalogItemID))
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, int64(1250), item.UnitPrice().MinorUnits())
	})

	t.Run("should fail with invalid catalog item id", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := cart.NewLineItem(invalidID, 1, money(t, 100))

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		item, err := cart.NewLineItem(kernel.NewUUID(), -1, money(t, 100))

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed unit price", func(t *testing.T) {
		var price kernel.Money

		item, err := cart.NewLineItem(kernel.NewUUID(), 1, price)

		require.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should fail for nil line item", func(t *testing.T) {
		var item *cart.LineItem

		require.Equal(t, cart.ErrLineItemIsNotConstructed, item.Validate())
	})

	t.Run("should fail for zero value line item", func(t *testing.T) {
		var item cart.LineItem

		require.Equal(t, cart.ErrLineItemIsNotConstructed, item.Validate())
	})
}

func TestLineItem_LineTotal(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		item, err := cart.NewLineItem(kernel.NewUUID(), 4, money(t, 1999))
		require.NoError(t, err)

		total, err := item.LineTotal()

		require.NoError(t, err)
		assert.Equal(t, int64(7996), total.MinorUnits())
	})
}

func TestKind_Validate(t *testing.T) {
	t.Run("should accept product and service kinds", func(t *testing.T) {
		assert.NoError(t, cart.KindProduct.Validate())
		assert.NoError(t, cart.KindService.Validate())
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		err := cart.KindUnknown.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Product", cart.KindProduct.String())
	assert.Equal(t, "Service", cart.KindService.String())
	assert.Equal(t, "Unknown", cart.KindUnknown.String())
}
