package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a frozen order line. It captures the catalog item, quantity and
// unit price at checkout time; later catalog or cart changes never reach it.
type Item struct {
	// catalogItemID references the product or service variant in the catalog
	catalogItemID kernel.UUID

	// quantity is the unit count (or estimated hours for service items)
	quantity int

	// unitPrice is the price frozen at checkout
	unitPrice kernel.Money

	// guard ensures the item was created via NewItem
	guard kernel.ConstructorGuard
}

// NewItem creates a frozen order line.
func NewItem(catalogItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setCatalogItemID(catalogItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || i.guard.Validate(ErrItemIsNotConstructed) != nil {
		return ErrItemIsNotConstructed
	}
	return nil
}

// CatalogItemID returns the referenced catalog item's identifier.
func (i *Item) CatalogItemID() kernel.UUID {
	return i.catalogItemID
}

// Quantity returns the frozen unit count.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price frozen at checkout.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unitPrice multiplied by quantity, computed exactly.
func (i *Item) LineTotal() (kernel.Money, error) {
	return i.unitPrice.MultiplyByQuantity(i.quantity)
}

func (i *Item) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}
	i.catalogItemID = catalogItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
