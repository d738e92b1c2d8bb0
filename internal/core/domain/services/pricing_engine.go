package services

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingEngine is a stateless domain service that turns frozen line totals
// into a reconciled pricing snapshot. Tax and default shipping rates come
// from external lookup tables behind the injected providers; the engine
// itself holds no mutable state, so calls are freely parallelizable.
//
// Pricing rules:
//   - subtotal is the exact sum of line totals
//   - tax applies the combined rate for the destination state to the subtotal
//   - a missing tax rate is a warning, not an error: the rate defaults to
//     zero and the result carries TaxRateMissing for the caller to log
//   - shipping is the caller-selected rate, or the default rate when none is
//     selected, or zero when no default is configured
//   - expenses are added after tax and are never taxed
type PricingEngine struct {
	taxRates      ports.TaxRateProvider
	shippingRates ports.ShippingRateProvider
}

// NewPricingEngine creates a PricingEngine backed by the given rate providers.
func NewPricingEngine(taxRates ports.TaxRateProvider, shippingRates ports.ShippingRateProvider) (PricingEngine, error) {
	if taxRates == nil {
		return PricingEngine{}, errs.NewValueIsRequiredError("taxRates")
	}
	if shippingRates == nil {
		return PricingEngine{}, errs.NewValueIsRequiredError("shippingRates")
	}

	return PricingEngine{
		taxRates:      taxRates,
		shippingRates: shippingRates,
	}, nil
}

// PricingResult carries the computed snapshot plus the non-fatal warning
// raised when the destination state has no configured tax rate.
type PricingResult struct {
	Snapshot       kernel.PricingSnapshot
	TaxRateMissing bool
}

// ComputeTotals prices a set of frozen line totals.
//
// Parameters:
//   - lineTotals: the exact per-line totals to sum into the subtotal
//   - stateCode: destination state for the tax rate lookup
//   - shippingAmount: the caller-selected shipping price, or nil to fall
//     back to the configured default rate
//   - expenseTotal: approved expenses to add after tax (zero at checkout)
//
// Returns:
//   - PricingResult: the reconciled snapshot and the tax rate warning flag
//   - error: lookup failures or arithmetic overflow
func (e PricingEngine) ComputeTotals(
	ctx context.Context,
	lineTotals []kernel.Money,
	stateCode string,
	shippingAmount *kernel.Money,
	expenseTotal kernel.Money,
) (PricingResult, error) {
	subtotal := kernel.ZeroMoney()
	for _, lineTotal := range lineTotals {
		var err error
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return PricingResult{}, err
		}
	}

	taxRate, taxRateMissing, err := e.resolveTaxRate(ctx, stateCode)
	if err != nil {
		return PricingResult{}, err
	}

	taxAmount, err := subtotal.ApplyRate(taxRate)
	if err != nil {
		return PricingResult{}, err
	}

	shipping, err := e.resolveShipping(ctx, shippingAmount)
	if err != nil {
		return PricingResult{}, err
	}

	snapshot, err := kernel.NewPricingSnapshot(subtotal, taxRate, taxAmount, shipping, expenseTotal)
	if err != nil {
		return PricingResult{}, err
	}

	return PricingResult{
		Snapshot:       snapshot,
		TaxRateMissing: taxRateMissing,
	}, nil
}

func (e PricingEngine) resolveTaxRate(ctx context.Context, stateCode string) (decimal.Decimal, bool, error) {
	if stateCode == "" {
		return decimal.Zero, false, errs.NewValueIsRequiredError("stateCode")
	}

	rate, err := e.taxRates.LookupActiveRate(ctx, stateCode)
	if err != nil {
		return decimal.Zero, false, err
	}

	if rate == nil {
		return decimal.Zero, true, nil
	}

	return rate.CombinedRate, false, nil
}

func (e PricingEngine) resolveShipping(ctx context.Context, shippingAmount *kernel.Money) (kernel.Money, error) {
	if shippingAmount != nil {
		if err := shippingAmount.Validate(); err != nil {
			return kernel.Money{}, err
		}
		return *shippingAmount, nil
	}

	defaultRate, err := e.shippingRates.GetDefault(ctx)
	if err != nil {
		return kernel.Money{}, err
	}

	if defaultRate == nil {
		return kernel.ZeroMoney(), nil
	}

	return defaultRate.Amount, nil
}
