package serviceorder

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a frozen service order line. It captures the service variant, the
// estimated hours and the hourly rate at checkout time.
type Item struct {
	// catalogItemID references the service variant in the catalog
	catalogItemID kernel.UUID

	// estimatedHours is the booked work estimate, frozen at checkout
	estimatedHours int

	// unitPrice is the hourly rate frozen at checkout
	unitPrice kernel.Money

	// guard ensures the item was created via NewItem
	guard kernel.ConstructorGuard
}

// NewItem creates a frozen service order line.
func NewItem(catalogItemID kernel.UUID, estimatedHours int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setCatalogItemID(catalogItemID),
		item.setEstimatedHours(estimatedHours),
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

// CatalogItemID returns the referenced service variant's identifier.
func (i *Item) CatalogItemID() kernel.UUID {
	return i.catalogItemID
}

// EstimatedHours returns the booked work estimate.
func (i *Item) EstimatedHours() int {
	return i.estimatedHours
}

// UnitPrice returns the hourly rate frozen at checkout.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unitPrice multiplied by estimated hours, computed exactly.
func (i *Item) LineTotal() (kernel.Money, error) {
	return i.unitPrice.MultiplyByQuantity(i.estimatedHours)
}

func (i *Item) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}
	i.catalogItemID = catalogItemID
	return nil
}

func (i *Item) setEstimatedHours(estimatedHours int) error {
	if estimatedHours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedHours",
			fmt.Errorf("%d is not greater than 0", estimatedHours))
	}
	i.estimatedHours = estimatedHours
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
