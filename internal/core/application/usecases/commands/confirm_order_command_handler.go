package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// ConfirmOrderCommandHandler handles payment confirmation of pending orders.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the confirm command. Attaches the payment intent first
// when the command carries one, then drives the Pending -> Confirmed
// transition and notifies after commit.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.PaymentIntentID() != "" {
		if err = o.AttachPaymentIntent(cmd.PaymentIntentID()); err != nil {
			return err
		}
	}

	if err = o.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, o.OrderNumber(), o.Status().String())
	return nil
}
