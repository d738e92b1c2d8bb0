package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves all orders still moving through fulfilment.
// Returns orders in any non-terminal status for operational dashboards.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve non-terminal orders.
// This is a parameterless query.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents an in-flight order in the read model.
type GetOpenOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	CustomerID  kernel.UUID
	Status      string
	Total       kernel.Money
}
