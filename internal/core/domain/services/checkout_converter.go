package services

import (
	"context"
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/serviceorder"
	"commerce/internal/pkg/errs"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutConverter is a domain service that turns a live cart into an
// immutable Pending order. A product cart yields an Order, a service cart a
// ServiceOrder.
//
// Checkout contract:
//   - the cart must be non-empty
//   - every line is deep-copied into a frozen item at its current unit price
//   - the pricing engine produces the snapshot from the frozen line totals
//   - a fresh unique order number is assigned
//   - the initial status is always Pending
//
// The converter never mutates or persists the cart; the surrounding command
// handler clears it and commits both writes in one transaction, so a failure
// mid-conversion leaves the cart untouched.
type CheckoutConverter struct {
	pricing PricingEngine
}

// NewCheckoutConverter creates a CheckoutConverter using the given engine.
func NewCheckoutConverter(pricing PricingEngine) CheckoutConverter {
	return CheckoutConverter{pricing: pricing}
}

// CheckoutResult carries the constructed aggregate. Exactly one of Order and
// ServiceOrder is set, matching the source cart's kind.
type CheckoutResult struct {
	Order          *order.Order
	ServiceOrder   *serviceorder.ServiceOrder
	TaxRateMissing bool
}

// Checkout converts a cart into a Pending order priced for the destination
// state.
//
// Parameters:
//   - crt: the source cart (must be valid and non-empty)
//   - stateCode: destination state for the tax rate lookup
//   - shippingAmount: the selected shipping price, or nil for the default
//
// Returns:
//   - *CheckoutResult: the frozen aggregate and the tax rate warning flag
//   - error: ErrEmptyCart, validation errors, or pricing failures
func (c CheckoutConverter) Checkout(
	ctx context.Context,
	crt *cart.Cart,
	stateCode string,
	shippingAmount *kernel.Money,
) (*CheckoutResult, error) {
	if err := crt.Validate(); err != nil {
		return nil, err
	}

	if crt.IsEmpty() {
		return nil, fmt.Errorf("%w: cart %s has no items", ErrEmptyCart, crt.ID())
	}

	lineTotals := make([]kernel.Money, 0, len(crt.Items()))
	for _, line := range crt.Items() {
		lineTotal, err := line.LineTotal()
		if err != nil {
			return nil, err
		}
		lineTotals = append(lineTotals, lineTotal)
	}

	pricing, err := c.pricing.ComputeTotals(ctx, lineTotals, stateCode, shippingAmount, kernel.ZeroMoney())
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{TaxRateMissing: pricing.TaxRateMissing}

	switch crt.Kind() {
	case cart.KindProduct:
		result.Order, err = c.buildOrder(crt, pricing.Snapshot)
	case cart.KindService:
		result.ServiceOrder, err = c.buildServiceOrder(crt, pricing.Snapshot)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("cart kind",
			fmt.Errorf("%d is not a valid cart kind", crt.Kind()))
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c CheckoutConverter) buildOrder(crt *cart.Cart, snapshot kernel.PricingSnapshot) (*order.Order, error) {
	items := make([]*order.Item, 0, len(crt.Items()))
	for _, line := range crt.Items() {
		item, err := order.NewItem(line.CatalogItemID(), line.Quantity(), line.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	number, err := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixOrder)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewUUID(), number, crt.OwnerID(), items, snapshot)
}

func (c CheckoutConverter) buildServiceOrder(crt *cart.Cart, snapshot kernel.PricingSnapshot) (*serviceorder.ServiceOrder, error) {
	items := make([]*serviceorder.Item, 0, len(crt.Items()))
	for _, line := range crt.Items() {
		item, err := serviceorder.NewItem(line.CatalogItemID(), line.Quantity(), line.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	number, err := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixService)
	if err != nil {
		return nil, err
	}

	return serviceorder.NewServiceOrder(kernel.NewUUID(), number, crt.OwnerID(), items, snapshot)
}
