package ports

import (
	"context"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	// The cart must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	// The write is guarded by the cart's version token; a concurrent
	// modification surfaces as a version conflict error.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByOwner retrieves the cart belonging to the given owner.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error)
}
