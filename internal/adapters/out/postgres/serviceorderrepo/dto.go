// Package serviceorderrepo provides data transfer objects and mapping functions
// for service order persistence, including the attached expense claims.
package serviceorderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceOrderDTO represents the database structure for persisting service
// order aggregates. Expenses live in their own table but belong to the
// aggregate and are written in the same transaction. The version column backs
// optimistic concurrency.
type ServiceOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	Status          int       `gorm:"index"`
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	CompletionNotes string
	Signature       string
	CancelReason    string
	Pricing         PricingDTO `gorm:"embedded"`
	CreatedAt       time.Time
	Version         int

	Items    []ServiceOrderItemDTO `gorm:"foreignKey:ServiceOrderID;references:ID;constraint:OnDelete:CASCADE"`
	Expenses []ExpenseDTO          `gorm:"foreignKey:ServiceOrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for service order entities.
func (ServiceOrderDTO) TableName() string {
	return "service_orders"
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

// ServiceOrderItemDTO represents a frozen service line.
type ServiceOrderItemDTO struct {
	ServiceOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CatalogItemID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int
	EstimatedHours int
	UnitPrice      int64
}

// TableName specifies the database table name for service line entities.
func (ServiceOrderItemDTO) TableName() string {
	return "service_order_items"
}

// ExpenseDTO represents an expense claim attached to a service order.
type ExpenseDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceOrderID uuid.UUID `gorm:"type:uuid;index"`
	Description    string
	Amount         int64
	Status         int
	ApprovedBy     string
	RejectReason   string
	SubmittedAt    time.Time
}

// TableName specifies the database table name for expense entities.
func (ExpenseDTO) TableName() string {
	return "expenses"
}

// fromDomain converts a service order domain aggregate to its database
// representation.
func fromDomain(aggregate *serviceorder.ServiceOrder) ServiceOrderDTO {
	items := make([]ServiceOrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, ServiceOrderItemDTO{
			ServiceOrderID: aggregate.ID().Bytes(),
			CatalogItemID:  item.CatalogItemID().Bytes(),
			Position:       position,
			EstimatedHours: item.EstimatedHours(),
			UnitPrice:      item.UnitPrice().MinorUnits(),
		})
	}

	expenses := make([]ExpenseDTO, 0, len(aggregate.Expenses()))
	for _, expense := range aggregate.Expenses() {
		expenses = append(expenses, ExpenseDTO{
			ID:             expense.ID().Bytes(),
			ServiceOrderID: aggregate.ID().Bytes(),
			Description:    expense.Description(),
			Amount:         expense.Amount().MinorUnits(),
			Status:         int(expense.Status()),
			ApprovedBy:     expense.ApprovedBy(),
			RejectReason:   expense.RejectReason(),
			SubmittedAt:    expense.SubmittedAt(),
		})
	}

	pricing := aggregate.Pricing()
	return ServiceOrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber().String(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Status:          int(aggregate.Status()),
		ScheduledStart:  aggregate.ScheduledStart(),
		ScheduledEnd:    aggregate.ScheduledEnd(),
		CompletionNotes: aggregate.CompletionNotes(),
		Signature:       aggregate.Signature(),
		CancelReason:    aggregate.CancelReason(),
		Pricing: PricingDTO{
			Subtotal:       pricing.Subtotal().MinorUnits(),
			TaxRate:        pricing.TaxRate(),
			TaxAmount:      pricing.TaxAmount().MinorUnits(),
			ShippingAmount: pricing.ShippingAmount().MinorUnits(),
			ExpenseAmount:  pricing.ExpenseAmount().MinorUnits(),
			Total:          pricing.Total().MinorUnits(),
		},
		CreatedAt: aggregate.CreatedAt(),
		Version:   aggregate.Version(),
		Items:     items,
		Expenses:  expenses,
	}
}

// toDomain converts a database DTO to a service order domain aggregate.
// Items are expected sorted by position, expenses by submission time.
func toDomain(dto ServiceOrderDTO) (*serviceorder.ServiceOrder, error) {
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

	items := make([]*serviceorder.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	expenses := make([]*serviceorder.Expense, 0, len(dto.Expenses))
	for _, expenseDTO := range dto.Expenses {
		expense, expenseErr := expenseToDomain(expenseDTO)
		if expenseErr != nil {
			return nil, expenseErr
		}
		expenses = append(expenses, expense)
	}

	pricing, err := pricingToDomain(dto.Pricing)
	if err != nil {
		return nil, err
	}

	return serviceorder.RestoreServiceOrder(id, orderNumber, customerID, items,
		pricing, serviceorder.Status(dto.Status), dto.ScheduledStart,
		dto.ScheduledEnd, dto.CompletionNotes, dto.Signature, dto.CancelReason,
		expenses, dto.CreatedAt, dto.Version)
}

func itemToDomain(dto ServiceOrderItemDTO) (*serviceorder.Item, error) {
	catalogItemID, err := kernel.UUIDFromBytes(dto.CatalogItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoneyFromMinorUnits(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return serviceorder.NewItem(catalogItemID, dto.EstimatedHours, unitPrice)
}

func expenseToDomain(dto ExpenseDTO) (*serviceorder.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromMinorUnits(dto.Amount)
	if err != nil {
		return nil, err
	}

	return serviceorder.RestoreExpense(id, dto.Description, amount,
		serviceorder.ApprovalStatus(dto.Status), dto.ApprovedBy,
		dto.RejectReason, dto.SubmittedAt)
}

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
