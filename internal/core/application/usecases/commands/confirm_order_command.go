package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a payment confirmation for a pending order.
// When the payment collaborator supplies the intent reference together with
// the confirmation signal, the command carries it so attach and confirm
// happen in one transaction.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	paymentIntentID string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
// The payment intent ID may be empty when it was attached earlier.
func NewConfirmOrderCommand(orderID kernel.UUID, paymentIntentID string) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		paymentIntentID: paymentIntentID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentIntentID returns the payment intent to attach, or empty.
func (c ConfirmOrderCommand) PaymentIntentID() string {
	return c.paymentIntentID
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
