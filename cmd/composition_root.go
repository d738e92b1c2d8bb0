package cmd

import (
	"log/slog"

	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/notify"
	"commerce/internal/adapters/out/payment"
	"commerce/internal/adapters/out/postgres"
	"commerce/internal/adapters/out/postgres/raterepo"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
	"commerce/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// Handlers are created per call; the underlying factories and providers are
// shared.
type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	notifier        ports.Notifier
	paymentProvider ports.PaymentProvider
	taxRates        ports.TaxRateProvider
	shippingRates   ports.ShippingRateProvider
	converter       services.CheckoutConverter
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	taxRates := raterepo.NewGormTaxRateProvider(gormDB)
	shippingRates := raterepo.NewGormShippingRateProvider(gormDB)

	engine, err := services.NewPricingEngine(taxRates, shippingRates)
	if err != nil {
		return CompositionRoot{}, err
	}

	paymentProvider, err := payment.NewClient(config.PaymentServiceURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:        notify.NewSlogNotifier(logger),
		paymentProvider: paymentProvider,
		taxRates:        taxRates,
		shippingRates:   shippingRates,
		converter:       services.NewCheckoutConverter(engine),
		logger:          logger,
	}, nil
}

// ShippingRateProvider exposes the shipping rate lookup for the HTTP layer.
func (c *CompositionRoot) ShippingRateProvider() ports.ShippingRateProvider {
	return c.shippingRates
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) serviceOrderUoWFactory() commands.ServiceOrderUoWFactory {
	return FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

// CreateCommandHandlers builds the full command handler set for the HTTP server.
func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	return httpin.CommandHandlers{
		AddItemToCart:      commands.NewAddItemToCartCommandHandler(c.cartUoWFactory()),
		RemoveItemFromCart: commands.NewRemoveItemFromCartCommandHandler(c.cartUoWFactory()),
		UpdateItemQuantity: commands.NewUpdateItemQuantityCommandHandler(c.cartUoWFactory()),
		ClearCart:          commands.NewClearCartCommandHandler(c.cartUoWFactory()),
		Checkout:           commands.NewCheckoutCommandHandler(c.checkoutUoWFactory(), c.converter, c.notifier),

		ConfirmOrder:         commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.notifier),
		StartOrderProcessing: commands.NewStartOrderProcessingCommandHandler(c.orderUoWFactory(), c.notifier),
		ShipOrder:            commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.notifier),
		DeliverOrder:         commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.notifier),
		CancelOrder:          commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier),
		RefundOrder:          commands.NewRefundOrderCommandHandler(c.orderUoWFactory(), c.notifier),

		ConfirmServiceOrder:  commands.NewConfirmServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		ScheduleServiceOrder: commands.NewScheduleServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		StartServiceWork:     commands.NewStartServiceWorkCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		HoldServiceWork:      commands.NewHoldServiceWorkCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		ResumeServiceWork:    commands.NewResumeServiceWorkCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		CompleteServiceOrder: commands.NewCompleteServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		InvoiceServiceOrder:  commands.NewInvoiceServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		CancelServiceOrder:   commands.NewCancelServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.notifier),
		AddExpense:           commands.NewAddExpenseCommandHandler(c.serviceOrderUoWFactory()),
		DecideExpense:        commands.NewDecideExpenseCommandHandler(c.serviceOrderUoWFactory()),
	}
}

// CreateQueryHandlers builds the read-side handlers for the HTTP server.
func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		GetCart:                   queries.NewGetCartQueryHandler(c.gormDB),
		GetOpenOrders:             queries.NewGetOpenOrdersQueryHandler(c.gormDB),
		GetUninvoicedServiceOrder: queries.NewGetUninvoicedServiceOrdersQueryHandler(c.gormDB),
	}
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderUoWFactory(),
		c.serviceOrderUoWFactory(),
		c.paymentProvider,
		commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.notifier),
		c.logger,
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncServiceOrderUoWFactory func() commands.ServiceOrderUoW

func (f FuncServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
