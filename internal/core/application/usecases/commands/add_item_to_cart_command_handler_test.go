package commands_test

import (
	"errors"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemToCartCommandHandler_Handle_CreatesCartOnFirstAdd(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd, err := commands.NewAddItemToCartCommand(
		cartID, kernel.NewUUID(), cart.KindProduct, kernel.NewUUID(), 2, testMoney(t, 1000))
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cartID).
			Return(nil, errs.NewObjectNotFoundError("cartId", cartID)).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_MergesIntoExistingCart(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	catalogItemID := kernel.NewUUID()

	existing, err := cart.NewCart(cartID, kernel.NewUUID(), cart.KindProduct)
	require.NoError(t, err)
	require.NoError(t, existing.AddItem(catalogItemID, 1, testMoney(t, 1000)))

	cmd, err := commands.NewAddItemToCartCommand(
		cartID, existing.OwnerID(), cart.KindProduct, catalogItemID, 2, testMoney(t, 1000))
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cartID).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, existing.Items(), 1)
	require.Equal(t, 3, existing.Items()[0].Quantity())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemToCartCommand{} // not constructed properly
	factory := new(MockCartUoWFactory)
	h := commands.NewAddItemToCartCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddItemToCartCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd, err := commands.NewAddItemToCartCommand(
		cartID, kernel.NewUUID(), cart.KindProduct, kernel.NewUUID(), 1, testMoney(t, 500))
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cartID).Return(nil, errors.New("connection lost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
