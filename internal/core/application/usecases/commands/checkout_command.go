package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to convert a cart into an order.
// The destination state code drives the tax rate lookup; the shipping amount
// is the rate the customer selected, or nil for the configured default.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(cartID, "CA", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, converter, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cartID         kernel.UUID
	stateCode      string
	shippingAmount *kernel.Money

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the given cart.
func NewCheckoutCommand(cartID kernel.UUID, stateCode string, shippingAmount *kernel.Money) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setStateCode(stateCode),
		cmd.setShippingAmount(shippingAmount),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CartID returns the source cart's identifier.
func (c CheckoutCommand) CartID() kernel.UUID {
	return c.cartID
}

// StateCode returns the destination state for the tax rate lookup.
func (c CheckoutCommand) StateCode() string {
	return c.stateCode
}

// ShippingAmount returns the selected shipping price, or nil for the default.
func (c CheckoutCommand) ShippingAmount() *kernel.Money {
	return c.shippingAmount
}

func (c *CheckoutCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *CheckoutCommand) setStateCode(stateCode string) error {
	if stateCode == "" {
		return errs.NewValueIsRequiredError("stateCode")
	}
	c.stateCode = stateCode
	return nil
}

func (c *CheckoutCommand) setShippingAmount(shippingAmount *kernel.Money) error {
	if shippingAmount == nil {
		return nil
	}
	if err := shippingAmount.Validate(); err != nil {
		return err
	}
	c.shippingAmount = shippingAmount
	return nil
}
