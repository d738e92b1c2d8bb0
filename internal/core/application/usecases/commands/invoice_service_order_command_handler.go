package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// InvoiceServiceOrderCommandHandler drives Completed -> Invoiced.
// The aggregate recomputes its expense amount from approved expenses inside
// Invoice; the handler only persists and notifies.
type InvoiceServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewInvoiceServiceOrderCommandHandler creates a handler for invoicing.
func NewInvoiceServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) InvoiceServiceOrderCommandHandler {
	return InvoiceServiceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the invoice command.
func (h *InvoiceServiceOrderCommandHandler) Handle(ctx context.Context, cmd InvoiceServiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ServiceOrderRepository()

	so, err := repo.Get(ctx, cmd.ServiceOrderID())
	if err != nil {
		return err
	}

	if err = so.Invoice(); err != nil {
		return err
	}

	if err = repo.Update(ctx, so); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, so.OrderNumber(), so.Status().String())
	return nil
}
