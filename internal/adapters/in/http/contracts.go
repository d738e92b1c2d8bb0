package http

import "time"

// Monetary amounts on the wire are integer minor units, matching the
// domain's Money representation.

// AddCartItemRequest is the body for adding a line to a cart. The owner and
// kind create the cart when it does not exist yet.
type AddCartItemRequest struct {
	OwnerID       string `json:"owner_id"`
	Kind          string `json:"kind"`
	CatalogItemID string `json:"catalog_item_id"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
}

// UpdateCartItemRequest is the body for changing a line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest is the body for converting a cart into an order.
// ShippingCode is optional; when absent the default shipping rate applies.
type CheckoutRequest struct {
	StateCode    string `json:"state_code"`
	ShippingCode string `json:"shipping_code,omitempty"`
}

// ConfirmOrderRequest carries the payment intent attached at confirmation.
type ConfirmOrderRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

// ShipOrderRequest carries the carrier tracking number.
type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// CancelRequest carries the mandatory cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// ScheduleRequest carries the service visit window.
type ScheduleRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CompleteServiceOrderRequest carries the completion report.
type CompleteServiceOrderRequest struct {
	CompletionNotes string `json:"completion_notes"`
	Signature       string `json:"signature"`
}

// AddExpenseRequest is the body for submitting an expense claim.
type AddExpenseRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// AddExpenseResponse returns the identifier assigned to the claim.
type AddExpenseResponse struct {
	ExpenseID string `json:"expense_id"`
}

// DecideExpenseRequest records an approve or reject decision.
type DecideExpenseRequest struct {
	Approve    bool   `json:"approve"`
	ApprovedBy string `json:"approved_by,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// CartResponse is the cart read model.
type CartResponse struct {
	ID       string             `json:"id"`
	OwnerID  string             `json:"owner_id"`
	Kind     string             `json:"kind"`
	Items    []CartItemResponse `json:"items"`
	Subtotal int64              `json:"subtotal"`
}

// CartItemResponse is a single cart line.
type CartItemResponse struct {
	CatalogItemID string `json:"catalog_item_id"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
	LineTotal     int64  `json:"line_total"`
}

// OpenOrderResponse is one row of the open orders listing.
type OpenOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
}

// UninvoicedServiceOrderResponse is one row of the uninvoiced listing.
type UninvoicedServiceOrderResponse struct {
	ID              string `json:"id"`
	OrderNumber     string `json:"order_number"`
	CustomerID      string `json:"customer_id"`
	Total           int64  `json:"total"`
	PendingExpenses int    `json:"pending_expenses"`
}

// ShippingRateResponse is a selectable shipping option.
type ShippingRateResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}
