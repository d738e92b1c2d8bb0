package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrInvoiceServiceOrderCommandIsNotConstructed = errors.New(
	"InvoiceServiceOrderCommand must be created via NewInvoiceServiceOrderCommand constructor",
)

// InvoiceServiceOrderCommand represents a request to finalize a completed
// service order, folding the approved expenses into its totals.
type InvoiceServiceOrderCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewInvoiceServiceOrderCommand creates a command to invoice a service order.
func NewInvoiceServiceOrderCommand(serviceOrderID kernel.UUID) (InvoiceServiceOrderCommand, error) {
	cmd := InvoiceServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setServiceOrderID(serviceOrderID); err != nil {
		return InvoiceServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InvoiceServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrInvoiceServiceOrderCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c InvoiceServiceOrderCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

func (c *InvoiceServiceOrderCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}
