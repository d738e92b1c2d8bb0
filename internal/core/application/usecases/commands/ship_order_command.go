package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a shipment created for a processing order.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to mark an order shipped.
func NewShipOrderCommand(orderID kernel.UUID, trackingNumber string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the shipment tracking number.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	c.trackingNumber = trackingNumber
	return nil
}
