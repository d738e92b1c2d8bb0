package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUninvoicedServiceOrdersQueryHandler retrieves completed, uninvoiced
// bookings from the database together with their pending expense counts.
type GetUninvoicedServiceOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUninvoicedServiceOrdersQueryHandler creates a handler for uninvoiced
// booking queries. Requires a GORM database connection for query execution.
func NewGetUninvoicedServiceOrdersQueryHandler(db *gorm.DB) GetUninvoicedServiceOrdersQueryHandler {
	return GetUninvoicedServiceOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve completed service orders that have
// not been invoiced. The pending expense count comes from a correlated
// subquery so a single round trip serves the whole billing list.
func (h GetUninvoicedServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUninvoicedServiceOrdersQuery,
) ([]GetUninvoicedServiceOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookings := make([]GetUninvoicedServiceOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			so.id,
			so.order_number,
			so.customer_id,
			so.total,
			(
				SELECT COUNT(*)
				FROM expenses e
				WHERE e.service_order_id = so.id AND e.status = ?
			) AS pending_expenses
		FROM service_orders so
		WHERE so.status = ?
		ORDER BY so.created_at
	`, int(serviceorder.ApprovalPending), int(serviceorder.StatusCompleted)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUninvoicedServiceOrdersQueryResponse
		var id, customerID uuid.UUID
		var totalMinor int64

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&customerID,
			&totalMinor,
			&resp.PendingExpenses,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bookingID

		customer, customerErr := kernel.UUIDFromBytes(customerID[:])
		if customerErr != nil {
			return nil, customerErr
		}
		resp.CustomerID = customer

		total, totalErr := kernel.NewMoneyFromMinorUnits(totalMinor)
		if totalErr != nil {
			return nil, totalErr
		}
		resp.Total = total

		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
