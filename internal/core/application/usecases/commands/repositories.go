// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ServiceOrderRepoFactory provides access to the service order repository
	// within a transaction.
	ServiceOrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ServiceOrderUoW manages transactions for service-order-only operations.
	ServiceOrderUoW interface {
		TxManager
		ServiceOrderRepoFactory
	}

	// ServiceOrderUoWFactory creates new service order unit of work instances.
	ServiceOrderUoWFactory interface {
		Create() ServiceOrderUoW
	}

	// CheckoutUoW manages the checkout transaction, which clears the source
	// cart and persists the produced order (or service order) atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cartRepo := uow.CartRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		ServiceOrderRepoFactory
	}

	// CheckoutUoWFactory creates new unit of work instances for checkout.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
