package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testPendingOrder(t)
	cmd, err := commands.NewConfirmOrderCommand(o.ID(), "pi_123")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", ctx, o.OrderNumber(), order.StatusConfirmed.String()).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusConfirmed, o.Status())
	require.Equal(t, "pi_123", o.PaymentIntentID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_PaymentNotConfirmed(t *testing.T) {
	ctx := t.Context()
	o := testPendingOrder(t) // no payment intent attached
	cmd, err := commands.NewConfirmOrderCommand(o.ID(), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrPaymentNotConfirmed)
	require.Equal(t, order.StatusPending, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_AlreadyFinalized(t *testing.T) {
	ctx := t.Context()
	o := testPendingOrder(t)
	require.NoError(t, o.Cancel("changed my mind"))

	cmd, err := commands.NewConfirmOrderCommand(o.ID(), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
