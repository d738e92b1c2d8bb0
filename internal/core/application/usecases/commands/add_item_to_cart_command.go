package commands

import (
	"errors"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrAddItemToCartCommandIsNotConstructed = errors.New(
	"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
)

// AddItemToCartCommand represents a request to add a catalog item to a cart.
// Carries the owner and cart kind so the handler can create the cart on the
// first add.
//
// Example:
//
//	cmd, err := NewAddItemToCartCommand(cartID, ownerID, cart.KindProduct, itemID, 2, price)
//	if err != nil {
//	    return fmt.Errorf("invalid cart item data: %w", err)
//	}
//
//	handler := NewAddItemToCartCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	cartID        kernel.UUID
	ownerID       kernel.UUID
	kind          cart.Kind
	catalogItemID kernel.UUID
	quantity      int
	unitPrice     kernel.Money

	guard guard.ConstructorGuard
}

// NewAddItemToCartCommand creates a command to add an item to a cart.
// The quantity check happens in the domain so merges validate the summed
// value, not the increment.
func NewAddItemToCartCommand(
	cartID kernel.UUID,
	ownerID kernel.UUID,
	kind cart.Kind,
	catalogItemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (AddItemToCartCommand, error) {
	cmd := AddItemToCartCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setOwnerID(ownerID),
		cmd.setKind(kind),
		cmd.setCatalogItemID(catalogItemID),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return AddItemToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

// CartID returns the target cart's identifier.
func (c AddItemToCartCommand) CartID() kernel.UUID {
	return c.cartID
}

// OwnerID returns the cart owner's identifier.
func (c AddItemToCartCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Kind returns the cart kind used when the cart is created on first add.
func (c AddItemToCartCommand) Kind() cart.Kind {
	return c.kind
}

// CatalogItemID returns the catalog item to add.
func (c AddItemToCartCommand) CatalogItemID() kernel.UUID {
	return c.catalogItemID
}

// Quantity returns the quantity to add.
func (c AddItemToCartCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the unit price captured at add time.
func (c AddItemToCartCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddItemToCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *AddItemToCartCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *AddItemToCartCommand) setKind(kind cart.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *AddItemToCartCommand) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}
	c.catalogItemID = catalogItemID
	return nil
}

func (c *AddItemToCartCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	c.unitPrice = unitPrice
	return nil
}
