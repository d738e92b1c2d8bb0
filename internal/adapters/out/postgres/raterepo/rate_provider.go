// Package raterepo provides read-only access to the tax and shipping rate
// lookup tables. Rates are reference data managed outside the engine, so the
// providers only read.
package raterepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRateDTO represents a row of the tax rate lookup table. Rates are
// percentages, e.g. 8.25 for 8.25%.
type TaxRateDTO struct {
	StateCode    string          `gorm:"primaryKey"`
	StateRate    decimal.Decimal `gorm:"type:numeric(8,4)"`
	LocalRate    decimal.Decimal `gorm:"type:numeric(8,4)"`
	CombinedRate decimal.Decimal `gorm:"type:numeric(8,4)"`
	Active       bool
}

// TableName specifies the database table name for tax rate rows.
func (TaxRateDTO) TableName() string {
	return "tax_rates"
}

// ShippingRateDTO represents a row of the shipping rate lookup table.
type ShippingRateDTO struct {
	Code      string `gorm:"primaryKey"`
	Name      string
	Amount    int64
	IsDefault bool
	Active    bool
}

// TableName specifies the database table name for shipping rate rows.
func (ShippingRateDTO) TableName() string {
	return "shipping_rates"
}

// GormTaxRateProvider implements TaxRateProvider using GORM.
type GormTaxRateProvider struct {
	db *gorm.DB
}

// NewGormTaxRateProvider creates a tax rate provider backed by the database.
func NewGormTaxRateProvider(db *gorm.DB) *GormTaxRateProvider {
	return &GormTaxRateProvider{db: db}
}

// LookupActiveRate returns the active rate for a state code, or (nil, nil)
// when no rate is configured. A missing rate is the caller's warning case,
// not a lookup failure.
func (p *GormTaxRateProvider) LookupActiveRate(ctx context.Context, stateCode string) (*ports.TaxRate, error) {
	var dto TaxRateDTO
	err := p.db.WithContext(ctx).
		First(&dto, "state_code = ? AND active", stateCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ports.TaxRate{
		StateCode:    dto.StateCode,
		StateRate:    dto.StateRate,
		LocalRate:    dto.LocalRate,
		CombinedRate: dto.CombinedRate,
	}, nil
}

// GormShippingRateProvider implements ShippingRateProvider using GORM.
type GormShippingRateProvider struct {
	db *gorm.DB
}

// NewGormShippingRateProvider creates a shipping rate provider backed by the
// database.
func NewGormShippingRateProvider(db *gorm.DB) *GormShippingRateProvider {
	return &GormShippingRateProvider{db: db}
}

// ListActiveRates returns every currently selectable shipping rate.
func (p *GormShippingRateProvider) ListActiveRates(ctx context.Context) ([]ports.ShippingRate, error) {
	var dtos []ShippingRateDTO
	if err := p.db.WithContext(ctx).Find(&dtos, "active").Error; err != nil {
		return nil, err
	}

	rates := make([]ports.ShippingRate, 0, len(dtos))
	for _, dto := range dtos {
		rate, err := toShippingRate(dto)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

// GetDefault returns the default shipping rate, or (nil, nil) when none is
// configured.
func (p *GormShippingRateProvider) GetDefault(ctx context.Context) (*ports.ShippingRate, error) {
	var dto ShippingRateDTO
	err := p.db.WithContext(ctx).
		First(&dto, "is_default AND active").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	rate, err := toShippingRate(dto)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func toShippingRate(dto ShippingRateDTO) (ports.ShippingRate, error) {
	amount, err := kernel.NewMoneyFromMinorUnits(dto.Amount)
	if err != nil {
		return ports.ShippingRate{}, err
	}

	return ports.ShippingRate{
		Code:   dto.Code,
		Name:   dto.Name,
		Amount: amount,
	}, nil
}
