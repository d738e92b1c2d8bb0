package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrRemoveItemFromCartCommandIsNotConstructed = errors.New(
	"RemoveItemFromCartCommand must be created via NewRemoveItemFromCartCommand constructor",
)

// RemoveItemFromCartCommand represents a request to delete a cart line.
type RemoveItemFromCartCommand struct { //nolint:recvcheck //using for validation
	cartID        kernel.UUID
	catalogItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemFromCartCommand creates a command to remove an item from a cart.
func NewRemoveItemFromCartCommand(cartID, catalogItemID kernel.UUID) (RemoveItemFromCartCommand, error) {
	cmd := RemoveItemFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setCatalogItemID(catalogItemID),
	); err != nil {
		return RemoveItemFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromCartCommandIsNotConstructed)
}

// CartID returns the target cart's identifier.
func (c RemoveItemFromCartCommand) CartID() kernel.UUID {
	return c.cartID
}

// CatalogItemID returns the catalog item to remove.
func (c RemoveItemFromCartCommand) CatalogItemID() kernel.UUID {
	return c.catalogItemID
}

func (c *RemoveItemFromCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *RemoveItemFromCartCommand) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}
	c.catalogItemID = catalogItemID
	return nil
}
