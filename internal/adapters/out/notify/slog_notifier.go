// Package notify provides the structured-log implementation of the
// notification port. A real deployment would swap this for an email or push
// gateway behind the same interface.
package notify

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/kernel"
)

// SlogNotifier writes status change notifications to the structured log.
// Notification is fire-and-forget, so there is nothing to return.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that records notifications via the
// given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// NotifyStatusChanged records the transition of an order into a new status.
func (n *SlogNotifier) NotifyStatusChanged(_ context.Context, orderNumber kernel.OrderNumber, status string) {
	n.logger.Info("order status changed",
		"order_number", orderNumber.String(),
		"status", status,
	)
}
