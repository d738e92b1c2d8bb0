package queries

import (
	"context"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves cart read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query to retrieve a cart with its lines.
// The subtotal is summed from line totals during scanning, so the response is
// internally consistent even if prices change right after the read.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var resp GetCartQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			kind
		FROM carts
		WHERE id = ?
	`, query.CartID().Bytes()).Row()

	var id, ownerID uuid.UUID
	var kind int
	if err := row.Scan(&id, &ownerID, &kind); err != nil {
		return GetCartQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"cartId", query.CartID(), err)
	}

	cartID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	resp.ID = cartID

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	resp.OwnerID = owner
	resp.Kind = cart.Kind(kind).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			catalog_item_id,
			quantity,
			unit_price
		FROM cart_items
		WHERE cart_id = ?
		ORDER BY position
	`, query.CartID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	resp.Items = make([]CartLineResponse, 0)
	subtotal := kernel.ZeroMoney()

	for rows.Next() {
		var line CartLineResponse
		var catalogItemID uuid.UUID
		var quantity int
		var unitPriceMinor int64

		if err = rows.Scan(&catalogItemID, &quantity, &unitPriceMinor); err != nil {
			return GetCartQueryResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(catalogItemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.CatalogItemID = itemID
		line.Quantity = quantity

		unitPrice, priceErr := kernel.NewMoneyFromMinorUnits(unitPriceMinor)
		if priceErr != nil {
			return GetCartQueryResponse{}, priceErr
		}
		line.UnitPrice = unitPrice

		lineTotal, totalErr := unitPrice.MultiplyByQuantity(quantity)
		if totalErr != nil {
			return GetCartQueryResponse{}, totalErr
		}
		line.LineTotal = lineTotal

		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		resp.Items = append(resp.Items, line)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp.Subtotal = subtotal
	return resp, nil
}
