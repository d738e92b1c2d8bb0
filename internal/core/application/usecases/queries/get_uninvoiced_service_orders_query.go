package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetUninvoicedServiceOrdersQueryIsNotConstructed = errors.New(
	"GetUninvoicedServiceOrdersQuery must be created via NewGetUninvoicedServiceOrdersQuery constructor",
)

// GetUninvoicedServiceOrdersQuery retrieves completed bookings that have not
// been invoiced yet, with the count of expense claims still awaiting a
// decision. Billing works this list down to zero.
//
// Example:
//
//	query := NewGetUninvoicedServiceOrdersQuery()
//	bookings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get uninvoiced bookings: %w", err)
//	}
//
//	for _, b := range bookings {
//	    if b.PendingExpenses > 0 {
//	        fmt.Printf("%s blocked by %d pending expenses\n",
//	            b.OrderNumber, b.PendingExpenses)
//	    }
//	}
type GetUninvoicedServiceOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUninvoicedServiceOrdersQuery creates a query to retrieve completed,
// uninvoiced service orders. This is a parameterless query.
func NewGetUninvoicedServiceOrdersQuery() GetUninvoicedServiceOrdersQuery {
	return GetUninvoicedServiceOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUninvoicedServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUninvoicedServiceOrdersQueryIsNotConstructed)
}

// GetUninvoicedServiceOrdersQueryResponse represents a completed booking
// awaiting invoicing. PendingExpenses is the number of expense claims that
// must be decided before Invoice can succeed.
type GetUninvoicedServiceOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerID      kernel.UUID
	Total           kernel.Money
	PendingExpenses int
}
