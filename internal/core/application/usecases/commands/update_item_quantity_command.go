package commands

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrUpdateItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateItemQuantityCommand must be created via NewUpdateItemQuantityCommand constructor",
)

// UpdateItemQuantityCommand represents a request to replace the quantity of
// an existing cart line. Zero or negative quantities are rejected; removal
// goes through RemoveItemFromCartCommand.
type UpdateItemQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID        kernel.UUID
	catalogItemID kernel.UUID
	quantity      int

	guard guard.ConstructorGuard
}

// NewUpdateItemQuantityCommand creates a command to replace a line quantity.
func NewUpdateItemQuantityCommand(cartID, catalogItemID kernel.UUID, quantity int) (UpdateItemQuantityCommand, error) {
	cmd := UpdateItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setCatalogItemID(catalogItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemQuantityCommandIsNotConstructed)
}

// CartID returns the target cart's identifier.
func (c UpdateItemQuantityCommand) CartID() kernel.UUID {
	return c.cartID
}

// CatalogItemID returns the catalog item whose line changes.
func (c UpdateItemQuantityCommand) CatalogItemID() kernel.UUID {
	return c.catalogItemID
}

// Quantity returns the replacement quantity.
func (c UpdateItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateItemQuantityCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *UpdateItemQuantityCommand) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}
	c.catalogItemID = catalogItemID
	return nil
}

func (c *UpdateItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
