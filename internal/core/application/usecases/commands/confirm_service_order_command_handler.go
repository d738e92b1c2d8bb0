package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// ConfirmServiceOrderCommandHandler drives Pending -> Confirmed for bookings.
type ConfirmServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewConfirmServiceOrderCommandHandler creates a handler for booking confirmations.
func NewConfirmServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) ConfirmServiceOrderCommandHandler {
	return ConfirmServiceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the confirm command.
func (h *ConfirmServiceOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmServiceOrderCommand) error {
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

	if err = so.Confirm(); err != nil {
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
