package commands

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a delivery confirmation for a shipped order.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark an order delivered.
func NewDeliverOrderCommand(orderID kernel.UUID, deliveredAt time.Time) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveredAt(deliveredAt),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveredAt returns the actual delivery date.
func (c DeliverOrderCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	c.deliveredAt = deliveredAt
	return nil
}
