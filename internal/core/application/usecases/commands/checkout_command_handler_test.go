package commands_test

import (
	"context"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTaxRateProvider struct{ mock.Mock }

func (m *MockTaxRateProvider) LookupActiveRate(ctx context.Context, stateCode string) (*ports.TaxRate, error) {
	args := m.Called(ctx, stateCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.TaxRate), args.Error(1)
}

type MockShippingRateProvider struct{ mock.Mock }

func (m *MockShippingRateProvider) ListActiveRates(ctx context.Context) ([]ports.ShippingRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ShippingRate), args.Error(1)
}
func (m *MockShippingRateProvider) GetDefault(ctx context.Context) (*ports.ShippingRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ShippingRate), args.Error(1)
}

func testConverter(t *testing.T, taxRates ports.TaxRateProvider, shippingRates ports.ShippingRateProvider) services.CheckoutConverter {
	t.Helper()
	engine, err := services.NewPricingEngine(taxRates, shippingRates)
	require.NoError(t, err)
	return services.NewCheckoutConverter(engine)
}

func testProductCart(t *testing.T) *cart.Cart {
	t.Helper()
	crt, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), cart.KindProduct)
	require.NoError(t, err)
	require.NoError(t, crt.AddItem(kernel.NewUUID(), 2, testMoney(t, 1000)))
	require.NoError(t, crt.AddItem(kernel.NewUUID(), 1, testMoney(t, 500)))
	return crt
}

func TestCheckoutCommandHandler_Handle_ProductCart(t *testing.T) {
	ctx := t.Context()
	crt := testProductCart(t)
	shipping := testMoney(t, 500)
	cmd, err := commands.NewCheckoutCommand(crt.ID(), "CA", &shipping)
	require.NoError(t, err)

	taxRates := new(MockTaxRateProvider)
	taxRates.On("LookupActiveRate", mock.Anything, "CA").
		Return(&ports.TaxRate{StateCode: "CA", CombinedRate: decimal.NewFromInt(8)}, nil).Once()
	shippingRates := new(MockShippingRateProvider)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, crt.ID()).Return(crt, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Update", mock.Anything, crt).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", ctx, mock.AnythingOfType("kernel.OrderNumber"),
		order.StatusPending.String()).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory, testConverter(t, taxRates, shippingRates), notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	// checkout clears the source cart inside the same transaction
	require.True(t, crt.IsEmpty())

	added := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	require.Equal(t, order.StatusPending, added.Status())
	require.Equal(t, int64(3200), added.Pricing().Total().MinorUnits())
	require.Len(t, added.Items(), 2)

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
	taxRates.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	crt, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), cart.KindProduct)
	require.NoError(t, err)

	shipping := testMoney(t, 500)
	cmd, err := commands.NewCheckoutCommand(crt.ID(), "CA", &shipping)
	require.NoError(t, err)

	taxRates := new(MockTaxRateProvider)
	shippingRates := new(MockShippingRateProvider)

	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, crt.ID()).Return(crt, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory, testConverter(t, taxRates, shippingRates), notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrEmptyCart)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCheckoutCommandHandler(factory,
		testConverter(t, new(MockTaxRateProvider), new(MockShippingRateProvider)), new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
