package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// CheckoutCommandHandler handles the conversion of a cart into an order.
// The converter freezes items and pricing; the handler clears the source
// cart and persists cart and order in one transaction, so a failure anywhere
// leaves the cart untouched and produces no order.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	converter  services.CheckoutConverter
	notifier   ports.Notifier
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	converter services.CheckoutConverter,
	notifier ports.Notifier,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		converter:  converter,
		notifier:   notifier,
	}
}

// Handle processes the checkout command. A product cart yields an Order, a
// service cart a ServiceOrder; either way the new aggregate starts Pending.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	cartRepo := uow.CartRepository()

	crt, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	result, err := h.converter.Checkout(ctx, crt, cmd.StateCode(), cmd.ShippingAmount())
	if err != nil {
		return err
	}

	if result.TaxRateMissing {
		slog.Warn("no active tax rate for state, defaulting to zero",
			"stateCode", cmd.StateCode(), "cartId", crt.ID().String())
	}

	if result.Order != nil {
		if err = uow.OrderRepository().Add(ctx, result.Order); err != nil {
			return err
		}
	}
	if result.ServiceOrder != nil {
		if err = uow.ServiceOrderRepository().Add(ctx, result.ServiceOrder); err != nil {
			return err
		}
	}

	crt.Clear()
	if err = cartRepo.Update(ctx, crt); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if result.Order != nil {
		h.notifier.NotifyStatusChanged(ctx, result.Order.OrderNumber(), result.Order.Status().String())
	}
	if result.ServiceOrder != nil {
		h.notifier.NotifyStatusChanged(ctx, result.ServiceOrder.OrderNumber(), result.ServiceOrder.Status().String())
	}

	return nil
}
