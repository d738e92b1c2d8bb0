// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Pricing columns store the frozen snapshot in minor units; the stored total
// is re-verified against the components on load. The version column backs
// optimistic concurrency.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	Status          int       `gorm:"index"`
	PaymentIntentID string
	TrackingNumber  string
	DeliveredAt     *time.Time
	CancelReason    string
	Pricing         PricingDTO `gorm:"embedded"`
	CreatedAt       time.Time
	Version         int

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PricingDTO represents the embedded pricing snapshot columns.
type PricingDTO struct {
	Subtotal       int64
	TaxRate        decimal.Decimal `gorm:"type:numeric(8,4)"`
	TaxAmount      int64
	ShippingAmount int64
	ExpenseAmount  int64
	Total          int64
}

// OrderItemDTO represents a frozen order line.
type OrderItemDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CatalogItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position      int
	Quantity      int
	UnitPrice     int64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:       aggregate.ID().Bytes(),
			CatalogItemID: item.CatalogItemID().Bytes(),
			Position:      position,
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().MinorUnits(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber().String(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Status:          int(aggregate.Status()),
		PaymentIntentID: aggregate.PaymentIntentID(),
		TrackingNumber:  aggregate.TrackingNumber(),
		DeliveredAt:     aggregate.DeliveredAt(),
		CancelReason:    aggregate.CancelReason(),
		Pricing:         pricingFromDomain(aggregate.Pricing()),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

func pricingFromDomain(pricing kernel.PricingSnapshot) PricingDTO {
	return PricingDTO{
		Subtotal:       pricing.Subtotal().MinorUnits(),
		TaxRate:        pricing.TaxRate(),
		TaxAmount:      pricing.TaxAmount().MinorUnits(),
		ShippingAmount: pricing.ShippingAmount().MinorUnits(),
		ExpenseAmount:  pricing.ExpenseAmount().MinorUnits(),
		Total:          pricing.Total().MinorUnits(),
	}
}

// pricingToDomain restores the snapshot, re-verifying the stored total
// against the components. A mismatch means corrupted data and fails the load.
func pricingToDomain(dto PricingDTO) (kernel.PricingSnapshot, error) {
	subtotal, err := kernel.NewMoneyFromMinorUnits(dto.Subtotal)
	if err != nil {
		return kernel.PricingSnapshot{}, err
	}
	taxAmount, err := kernel.NewMoneyFromMinorUnits(dto.TaxAmount)
	if err != nil {
		return kernel.PricingSnapshot{}, err
	}
	shippingAmount, err := kernel.NewMoneyFromMinorUnits(dto.ShippingAmount)
	if err != nil {
		return kernel.PricingSnapshot{}, err
	}
	expenseAmount, err := kernel.NewMoneyFromMinorUnits(dto.ExpenseAmount)
	if err != nil {
		return kernel.PricingSnapshot{}, err
	}
	total, err := kernel.NewMoneyFromMinorUnits(dto.Total)
	if err != nil {
		return kernel.PricingSnapshot{}, err
	}

	return kernel.RestorePricingSnapshot(subtotal, dto.TaxRate, taxAmount,
		shippingAmount, expenseAmount, total)
}

// toDomain converts a database DTO to an order domain aggregate.
// Items are expected sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		catalogItemID, itemErr := kernel.UUIDFromBytes(itemDTO.CatalogItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, priceErr := kernel.NewMoneyFromMinorUnits(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, newErr := order.NewItem(catalogItemID, itemDTO.Quantity, unitPrice)
		if newErr != nil {
			return nil, newErr
		}
		items = append(items, item)
	}

	pricing, err := pricingToDomain(dto.Pricing)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, orderNumber, customerID, items, pricing,
		order.Status(dto.Status), dto.PaymentIntentID, dto.TrackingNumber,
		dto.DeliveredAt, dto.CancelReason, dto.CreatedAt, dto.Version)
}
