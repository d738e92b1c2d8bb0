package order_test

import (
	"testing"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Apply(t *testing.T) {
	t.Run("should follow the defined transition table", func(t *testing.T) {
		testCases := []struct {
			from  order.Status
			event order.Event
			to    order.Status
		}{
			{order.StatusPending, order.EventConfirm, order.StatusConfirmed},
			{order.StatusConfirmed, order.EventStartProcessing, order.StatusProcessing},
			{order.StatusProcessing, order.EventShip, order.StatusShipped},
			{order.StatusShipped, order.EventDeliver, order.StatusDelivered},
			{order.StatusPending, order.EventCancel, order.StatusCancelled},
			{order.StatusConfirmed, order.EventCancel, order.StatusCancelled},
			{order.StatusProcessing, order.EventCancel, order.StatusCancelled},
			{order.StatusDelivered, order.EventRefund, order.StatusRefunded},
			{order.StatusCancelled, order.EventRefund, order.StatusRefunded},
		}

		for _, tc := range testCases {
			t.Run(tc.from.String()+" "+tc.event.String(), func(t *testing.T) {
				next, err := tc.from.Apply(tc.event)

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("should reject skipping states", func(t *testing.T) {
		_, err := order.StatusPending.Apply(order.EventShip)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject cancel after shipment with window error", func(t *testing.T) {
		_, err := order.StatusShipped.Apply(order.EventCancel)

		require.ErrorIs(t, err, order.ErrCancellationWindowClosed)
	})

	t.Run("should reject cancel after delivery with window error", func(t *testing.T) {
		_, err := order.StatusDelivered.Apply(order.EventCancel)

		require.ErrorIs(t, err, order.ErrCancellationWindowClosed)
	})

	t.Run("should reject events at terminal statuses with finalized error", func(t *testing.T) {
		terminalCases := []struct {
			from  order.Status
			event order.Event
		}{
			{order.StatusDelivered, order.EventConfirm},
			{order.StatusCancelled, order.EventConfirm},
			{order.StatusCancelled, order.EventShip},
			{order.StatusRefunded, order.EventRefund},
			{order.StatusRefunded, order.EventCancel},
		}

		for _, tc := range terminalCases {
			t.Run(tc.from.String()+" "+tc.event.String(), func(t *testing.T) {
				_, err := tc.from.Apply(tc.event)

				require.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)
			})
		}
	})

	t.Run("should reject refund before delivery", func(t *testing.T) {
		_, err := order.StatusProcessing.Apply(order.EventRefund)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusConfirmed.IsTerminal())
	assert.False(t, order.StatusProcessing.IsTerminal())
	assert.False(t, order.StatusShipped.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.True(t, order.StatusRefunded.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		for s := order.StatusPending; s <= order.StatusRefunded; s++ {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.StatusPending.String())
	assert.Equal(t, "Shipped", order.StatusShipped.String())
	assert.Equal(t, "Unknown", order.StatusUnknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}
