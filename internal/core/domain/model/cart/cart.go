package cart

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Cart is the mutable pre-checkout aggregate root. It owns its line items
// exclusively and keeps them ordered by insertion, keyed by catalog item ID.
//
// Cart follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Kind is Product or Service and fixed for the cart's lifetime
//   - At most one line per catalog item; repeated adds merge into the line
//   - Every line quantity is positive
//   - Every mutation updates the modification timestamp
//
// The cart never holds priced totals: Subtotal recomputes live from the
// current lines. Freezing prices into a snapshot is checkout's job.
type Cart struct {
	// id is the unique identifier for the cart
	id kernel.UUID

	// ownerID identifies the user or anonymous session owning the cart
	ownerID kernel.UUID

	// kind determines whether checkout yields an Order or a ServiceOrder
	kind Kind

	// items are the owned lines, in insertion order
	items []*LineItem

	// createdAt is when the cart was first created
	createdAt time.Time

	// modifiedAt tracks the last mutation
	modifiedAt time.Time

	// version is the optimistic-concurrency token used to serialize writes
	version int

	// guard ensures the cart was created via NewCart
	guard kernel.ConstructorGuard
}

// NewCart creates an empty cart for the given owner.
func NewCart(id kernel.UUID, ownerID kernel.UUID, kind Kind) (*Cart, error) {
	now := time.Now().UTC()
	c := &Cart{
		createdAt:  now,
		modifiedAt: now,
		guard:      kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOwnerID(ownerID),
		c.setKind(kind),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart from persistence, including its lines,
// timestamps, and version token.
func RestoreCart(
	id kernel.UUID,
	ownerID kernel.UUID,
	kind Kind,
	items []*LineItem,
	createdAt time.Time,
	modifiedAt time.Time,
	version int,
) (*Cart, error) {
	c, err := NewCart(id, ownerID, kind)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	c.items = items
	c.createdAt = createdAt
	c.modifiedAt = modifiedAt
	c.version = version
	return c, nil
}

// Validate ensures the Cart instance was properly constructed through NewCart.
func (c *Cart) Validate() error {
	if c == nil || c.guard.Validate(ErrCartIsNotConstructed) != nil {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// OwnerID returns the identifier of the user or session owning the cart.
func (c *Cart) OwnerID() kernel.UUID {
	return c.ownerID
}

// Kind returns the cart kind (Product or Service).
func (c *Cart) Kind() Kind {
	return c.kind
}

// Items returns the cart's lines in insertion order.
// The returned slice is a copy; the lines themselves are the owned entities.
func (c *Cart) Items() []*LineItem {
	items := make([]*LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// CreatedAt returns the cart's creation time.
func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

// ModifiedAt returns the time of the last mutation.
func (c *Cart) ModifiedAt() time.Time {
	return c.modifiedAt
}

// Version returns the optimistic-concurrency token for serialized writes.
func (c *Cart) Version() int {
	return c.version
}

// AddItem adds a catalog item to the cart with the unit price captured at
// add time. If a line for the item already exists, the add merges into it:
// the new quantity is old plus added, and the unit price is updated to the
// supplied value (last-write-wins). Merging is deterministic, so concurrent
// adds from the same session serialize to the same cart contents.
func (c *Cart) AddItem(catalogItemID kernel.UUID, quantity int, unitPrice kernel.Money) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}

	if existing := c.find(catalogItemID); existing != nil {
		if err := existing.merge(quantity, unitPrice); err != nil {
			return err
		}
		c.touch()
		return nil
	}

	item, err := NewLineItem(catalogItemID, quantity, unitPrice)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	c.touch()
	return nil
}

// RemoveItem deletes the line for the given catalog item.
// Fails with an ObjectNotFoundError if no such line exists.
func (c *Cart) RemoveItem(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}

	for idx, item := range c.items {
		if item.catalogItemID.IsEqual(catalogItemID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			c.touch()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("catalogItemId", catalogItemID.String())
}

// UpdateQuantity replaces the quantity of an existing line. Quantities of
// zero or less are rejected; use RemoveItem to delete a line instead.
func (c *Cart) UpdateQuantity(catalogItemID kernel.UUID, quantity int) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}

	item := c.find(catalogItemID)
	if item == nil {
		return errs.NewObjectNotFoundError("catalogItemId", catalogItemID.String())
	}

	if err := item.setQuantity(quantity); err != nil {
		return err
	}

	c.touch()
	return nil
}

// Clear removes every line from the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.touch()
}

// Subtotal recomputes the live subtotal as the exact sum of line totals.
// Summation order cannot affect the result because Money addition is exact.
func (c *Cart) Subtotal() (kernel.Money, error) {
	subtotal := kernel.ZeroMoney()
	for _, item := range c.items {
		lineTotal, err := item.LineTotal()
		if err != nil {
			return kernel.Money{}, err
		}

		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return subtotal, nil
}

func (c *Cart) find(catalogItemID kernel.UUID) *LineItem {
	for _, item := range c.items {
		if item.catalogItemID.IsEqual(catalogItemID) {
			return item
		}
	}
	return nil
}

func (c *Cart) touch() {
	c.modifiedAt = time.Now().UTC()
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *Cart) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}
