package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/serviceorder"
	"commerce/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}
func (m *MockCartRepository) GetByOwner(_ context.Context, _ kernel.UUID) (*cart.Cart, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockServiceOrderRepository struct{ mock.Mock }

func (m *MockServiceOrderRepository) Add(ctx context.Context, so *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}
func (m *MockServiceOrderRepository) Update(ctx context.Context, so *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}
func (m *MockServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}
func (m *MockServiceOrderRepository) GetAllCompletedUninvoiced(_ context.Context) ([]*serviceorder.ServiceOrder, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockServiceOrderUoW struct{ mock.Mock }

func (m *MockServiceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockServiceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockServiceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockServiceOrderUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

type MockServiceOrderUoWFactory struct{ mock.Mock }

func (m *MockServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceOrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, orderNumber kernel.OrderNumber, status string) {
	m.Called(ctx, orderNumber, status)
}

func testMoney(t *testing.T, minorUnits int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromMinorUnits(minorUnits)
	require.NoError(t, err)
	return m
}

// testSnapshot builds 25.00 subtotal + 8% tax (2.00) + 5.00 shipping = 32.00.
func testSnapshot(t *testing.T) kernel.PricingSnapshot {
	t.Helper()
	s, err := kernel.NewPricingSnapshot(
		testMoney(t, 2500),
		decimal.NewFromInt(8),
		testMoney(t, 200),
		testMoney(t, 500),
		kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return s
}

func testPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, testMoney(t, 1000))
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), 1, testMoney(t, 500))
	require.NoError(t, err)

	number, err := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixOrder)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(),
		[]*order.Item{item, second}, testSnapshot(t))
	require.NoError(t, err)
	return o
}

func testCompletedServiceOrder(t *testing.T) *serviceorder.ServiceOrder {
	t.Helper()
	item, err := serviceorder.NewItem(kernel.NewUUID(), 4, testMoney(t, 625))
	require.NoError(t, err)

	number, err := kernel.GenerateOrderNumber(kernel.OrderNumberPrefixService)
	require.NoError(t, err)

	so, err := serviceorder.NewServiceOrder(kernel.NewUUID(), number, kernel.NewUUID(),
		[]*serviceorder.Item{item}, testSnapshot(t))
	require.NoError(t, err)

	require.NoError(t, so.Confirm())
	start := so.CreatedAt().Add(24 * time.Hour)
	require.NoError(t, so.Schedule(start, start.Add(4*time.Hour)))
	require.NoError(t, so.Start())
	require.NoError(t, so.Complete("replaced the compressor", ""))
	return so
}
