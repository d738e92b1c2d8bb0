package cart

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a single cart line referencing a catalog item. The unit price is
// captured at add time and is never recomputed from the catalog afterwards;
// later catalog price changes only affect lines added after the change.
//
// For product carts quantity is the number of units; for service carts it is
// the estimated hours of work. Either way it must be positive.
type LineItem struct {
	// catalogItemID references the product or service in the catalog
	catalogItemID kernel.UUID

	// quantity is the unit count (products) or estimated hours (services)
	quantity int

	// unitPrice is the price captured when the line was added or last updated
	unitPrice kernel.Money

	// guard ensures the line item was created via NewLineItem
	guard kernel.ConstructorGuard
}

// NewLineItem creates a cart line for the given catalog item.
// Quantity must be positive and the unit price must be a constructed Money.
func NewLineItem(catalogItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*LineItem, error) {
	item := &LineItem{
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

// Validate ensures the LineItem was created through NewLineItem.
func (i *LineItem) Validate() error {
	if i == nil || i.guard.Validate(ErrLineItemIsNotConstructed) != nil {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// CatalogItemID returns the referenced catalog item's identifier.
func (i *LineItem) CatalogItemID() kernel.UUID {
	return i.catalogItemID
}

// Quantity returns the unit count (or estimated hours for service items).
func (i *LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price captured at add time.
func (i *LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unitPrice multiplied by quantity, computed exactly.
func (i *LineItem) LineTotal() (kernel.Money, error) {
	return i.unitPrice.MultiplyByQuantity(i.quantity)
}

// merge folds another add of the same catalog item into this line:
// quantities are summed and the unit price takes the latest supplied value.
func (i *LineItem) merge(quantity int, unitPrice kernel.Money) error {
	if err := errors.Join(i.setQuantity(i.quantity+quantity), i.setUnitPrice(unitPrice)); err != nil {
		return err
	}
	return nil
}

func (i *LineItem) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}
	i.catalogItemID = catalogItemID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
