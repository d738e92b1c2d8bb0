package order_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

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

func orderNumber(t *testing.T) kernel.OrderNumber {
	t.Helper()
	number, err := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixOrder)
	require.NoError(t, err)
	return number
}

// snapshot builds 25.00 subtotal + 8% tax (2.00) + 5.00 shipping = 32.00.
func snapshot(t *testing.T) kernel.PricingSnapshot {
	t.Helper()
	s, err := kernel.NewPricingSnapshot(
		money(t, 2500),
		decimal.NewFromInt(8),
		money(t, 200),
		money(t, 500),
		kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return s
}

func items(t *testing.T) []*order.Item {
	t.Helper()
	first, err := order.NewItem(kernel.NewUUID(), 2, money(t, 1000))
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), 1, money(t, 500))
	require.NoError(t, err)
	return []*order.Item{first, second}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), orderNumber(t), kernel.NewUUID(), items(t), snapshot(t))
	require.NoError(t, err)
	return o
}

// newConfirmedOrder attaches a payment intent and confirms.
func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.AttachPaymentIntent("pi_123"))
	require.NoError(t, o.Confirm())
	return o
}

func newShippedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newConfirmedOrder(t)
	require.NoError(t, o.StartProcessing())
	require.NoError(t, o.MarkShipped("TRACK-1"))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		number := orderNumber(t)

		o, err := order.NewOrder(id, number, customerID, items(t), snapshot(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OrderNumber().IsEqual(number))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Empty(t, o.PaymentIntentID())
		assert.Empty(t, o.TrackingNumber())
		assert.Nil(t, o.DeliveredAt())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, orderNumber(t), kernel.NewUUID(), items(t), snapshot(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), orderNumber(t), kernel.NewUUID(), nil, snapshot(t))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed snapshot", func(t *testing.T) {
		var pricing kernel.PricingSnapshot

		o, err := order.NewOrder(kernel.NewUUID(), orderNumber(t), kernel.NewUUID(), items(t), pricing)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		require.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		require.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_AttachPaymentIntent(t *testing.T) {
	t.Run("should attach to pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AttachPaymentIntent("pi_123")

		require.NoError(t, err)
		assert.Equal(t, "pi_123", o.PaymentIntentID())
	})

	t.Run("should reject empty payment intent id", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AttachPaymentIntent("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject attach after confirmation", func(t *testing.T) {
		o := newConfirmedOrder(t)

		err := o.AttachPaymentIntent("pi_456")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, "pi_123", o.PaymentIntentID())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm pending order with payment intent", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AttachPaymentIntent("pi_123"))

		err := o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("should fail without payment intent", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Confirm()

		require.ErrorIs(t, err, order.ErrPaymentNotConfirmed)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should fail after cancellation with finalized error", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel("changed my mind"))

		err := o.Confirm()

		require.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestOrder_Fulfilment(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		o := newConfirmedOrder(t)

		require.NoError(t, o.StartProcessing())
		assert.Equal(t, order.StatusProcessing, o.Status())

		require.NoError(t, o.MarkShipped("TRACK-1"))
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.Equal(t, "TRACK-1", o.TrackingNumber())

		deliveredAt := time.Now().UTC()
		require.NoError(t, o.MarkDelivered(deliveredAt))
		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("should reject skipping processing", func(t *testing.T) {
		o := newConfirmedOrder(t)

		err := o.MarkShipped("TRACK-1")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Empty(t, o.TrackingNumber())
	})

	t.Run("should reject shipping without tracking number", func(t *testing.T) {
		o := newConfirmedOrder(t)
		require.NoError(t, o.StartProcessing())

		err := o.MarkShipped("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusProcessing, o.Status())
	})

	t.Run("should reject delivering with zero date", func(t *testing.T) {
		o := newShippedOrder(t)

		err := o.MarkDelivered(time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusShipped, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order with reason", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Cancel("out of stock")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "out of stock", o.CancelReason())
	})

	t.Run("should reject cancel after shipment with window error", func(t *testing.T) {
		o := newShippedOrder(t)

		err := o.Cancel("too late")

		require.ErrorIs(t, err, order.ErrCancellationWindowClosed)
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.Empty(t, o.CancelReason())
	})

	t.Run("should reject cancel without reason", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Cancel("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Refund(t *testing.T) {
	t.Run("should refund delivered order", func(t *testing.T) {
		o := newShippedOrder(t)
		require.NoError(t, o.MarkDelivered(time.Now().UTC()))

		err := o.Refund()

		require.NoError(t, err)
		assert.Equal(t, order.StatusRefunded, o.Status())
	})

	t.Run("should refund cancelled order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel("duplicate"))

		err := o.Refund()

		require.NoError(t, err)
		assert.Equal(t, order.StatusRefunded, o.Status())
	})

	t.Run("should reject refund before delivery", func(t *testing.T) {
		o := newConfirmedOrder(t)

		err := o.Refund()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("should reject second refund", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel("duplicate"))
		require.NoError(t, o.Refund())

		err := o.Refund()

		require.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with fulfilment fields", func(t *testing.T) {
		id := kernel.NewUUID()
		deliveredAt := time.Now().UTC().Add(-time.Hour)
		createdAt := time.Now().UTC().Add(-24 * time.Hour)

		o, err := order.RestoreOrder(
			id, orderNumber(t), kernel.NewUUID(), items(t), snapshot(t),
			order.StatusDelivered, "pi_123", "TRACK-1", &deliveredAt, "",
			createdAt, 5,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, "pi_123", o.PaymentIntentID())
		assert.Equal(t, "TRACK-1", o.TrackingNumber())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, 5, o.Version())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), orderNumber(t), kernel.NewUUID(), items(t), snapshot(t),
			order.StatusUnknown, "", "", nil, "",
			time.Now(), 0,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_FrozenItems(t *testing.T) {
	t.Run("should not expose internal item slice for mutation", func(t *testing.T) {
		o := newPendingOrder(t)

		copied := o.Items()
		copied[0] = nil

		assert.NotNil(t, o.Items()[0])
	})
}
