package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out terminal orders to provide active fulfilment workload visibility.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Excludes Delivered, Cancelled, and Refunded orders. Results are sorted by
// creation time so the oldest open orders surface first.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			status,
			total
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at
	`, int(order.StatusDelivered), int(order.StatusCancelled), int(order.StatusRefunded)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenOrdersQueryResponse
		var id, customerID uuid.UUID
		var status int
		var totalMinor int64

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&customerID,
			&status,
			&totalMinor,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		customer, customerErr := kernel.UUIDFromBytes(customerID[:])
		if customerErr != nil {
			return nil, customerErr
		}
		resp.CustomerID = customer
		resp.Status = order.Status(status).String()

		total, totalErr := kernel.NewMoneyFromMinorUnits(totalMinor)
		if totalErr != nil {
			return nil, totalErr
		}
		resp.Total = total

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
