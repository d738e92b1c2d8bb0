package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// TaxRate is the active tax rate for a state, split into its state and local
// components. CombinedRate is the percentage applied to taxable amounts,
// e.g. 8.25 for 8.25%.
type TaxRate struct {
	StateCode    string
	StateRate    decimal.Decimal
	LocalRate    decimal.Decimal
	CombinedRate decimal.Decimal
}

// ShippingRate is a priced shipping option.
type ShippingRate struct {
	Code   string
	Name   string
	Amount kernel.Money
}

// TaxRateProvider reads the external tax rate lookup table.
// Management of the table itself is outside the engine's scope.
type TaxRateProvider interface {
	// LookupActiveRate returns the active rate for a state code, or
	// (nil, nil) when no rate is configured. A missing rate is a warning
	// for the caller, not an error.
	LookupActiveRate(ctx context.Context, stateCode string) (*TaxRate, error)
}

// ShippingRateProvider reads the external shipping rate lookup table.
type ShippingRateProvider interface {
	// ListActiveRates returns every currently selectable shipping rate.
	ListActiveRates(ctx context.Context) ([]ShippingRate, error)

	// GetDefault returns the default shipping rate, or (nil, nil) when
	// none is configured.
	GetDefault(ctx context.Context) (*ShippingRate, error)
}
