package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a cart with its lines and live subtotal.
// The subtotal reflects current line prices; it is advisory until checkout
// freezes the cart into an order.
//
// Example:
//
//	query, err := NewGetCartQuery(cartID)
//	if err != nil {
//	    return err
//	}
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	fmt.Printf("Cart %s: %d lines, subtotal %s\n",
//	    cart.ID, len(cart.Items), cart.Subtotal)
type GetCartQuery struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to retrieve a cart by its identifier.
func NewGetCartQuery(cartID kernel.UUID) (GetCartQuery, error) {
	if err := cartID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		cartID: cartID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartID returns the identifier of the cart to retrieve.
func (q GetCartQuery) CartID() kernel.UUID {
	return q.cartID
}

// GetCartQueryResponse is the cart read model: identity, lines, and the
// subtotal summed from the current line prices.
type GetCartQueryResponse struct {
	ID       kernel.UUID
	OwnerID  kernel.UUID
	Kind     string
	Items    []CartLineResponse
	Subtotal kernel.Money
}

// CartLineResponse represents a single cart line in the read model.
type CartLineResponse struct {
	CatalogItemID kernel.UUID
	Quantity      int
	UnitPrice     kernel.Money
	LineTotal     kernel.Money
}
