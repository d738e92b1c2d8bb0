package commands

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/pkg/errs"
)

// AddItemToCartCommandHandler handles the business logic for cart additions.
// Creates the cart on the first add, merges repeated adds of the same
// catalog item, and persists the result transactionally.
type AddItemToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddItemToCartCommandHandler creates a handler for cart addition operations.
func NewAddItemToCartCommandHandler(uowFactory CartUoWFactory) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command. A missing cart is created with the
// command's owner and kind; an existing cart merges the addition.
func (h *AddItemToCartCommandHandler) Handle(ctx context.Context, cmd AddItemToCartCommand) error {
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
	switch {
	case err == nil:
		if err = crt.AddItem(cmd.CatalogItemID(), cmd.Quantity(), cmd.UnitPrice()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, crt); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		crt, err = cart.NewCart(cmd.CartID(), cmd.OwnerID(), cmd.Kind())
		if err != nil {
			return err
		}
		if err = crt.AddItem(cmd.CatalogItemID(), cmd.Quantity(), cmd.UnitPrice()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, crt); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
