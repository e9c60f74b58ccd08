// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"exchange/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so the composition root can hand out the same underlying unit
// of work behind several facades.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// BatchUoW manages transactions for batch-only operations,
	// such as publishing or reactivating a listing.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands modify order aggregates without touching the item.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ExchangeUoW manages transactions that keep an order and the item it
	// references consistent. Every handler that writes both must order the
	// writes order-first, item-second, so an interrupted operation leaves an
	// accepted order with an available item (safely retried) and never a
	// reserved item with a pending order.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	orderRepo := uow.OrderRepository()
	//	batchRepo := uow.BatchRepository()
	//	// ... order write, then conditional item write
	//
	//	err = uow.Commit(ctx)
	ExchangeUoW interface {
		TxManager
		OrderRepoFactory
		BatchRepoFactory
	}

	// ExchangeUoWFactory creates new unit of work instances for
	// order-plus-item operations.
	ExchangeUoWFactory interface {
		Create() ExchangeUoW
	}

	// RatingUoW manages transactions for rating operations. The order
	// repository is included because eligibility is decided against the
	// order inside the same transaction that inserts the rating.
	RatingUoW interface {
		TxManager
		RatingRepoFactory
		OrderRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// OverrideUoW manages transactions for administrative overrides, where
	// the status write and the audit entry must commit or fail together.
	OverrideUoW interface {
		TxManager
		BatchRepoFactory
		AuditRepoFactory
	}

	// OverrideUoWFactory creates new override unit of work instances.
	OverrideUoWFactory interface {
		Create() OverrideUoW
	}
)
