package commands

import (
	"context"
)

// UpdateItemQuantityCommandHandler handles cart line quantity replacement.
type UpdateItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateItemQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateItemQuantityCommandHandler(uowFactory CartUoWFactory) UpdateItemQuantityCommandHandler {
	return UpdateItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-quantity command.
func (h *UpdateItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateItemQuantityCommand) error {
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

	if err = crt.UpdateQuantity(cmd.CatalogItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, crt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
