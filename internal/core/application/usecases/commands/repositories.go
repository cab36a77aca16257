// Package commands contains the write-side operations of the service order
// core. Each operation is a command/handler pair: the command validates its
// input on construction, the handler runs all resource mutations inside one
// unit of work so they fully commit or fully roll back.
package commands

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend only on the repositories they actually touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// StockRepoFactory provides access to the stock repository within a
	// transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within
	// a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// SequenceFactory provides access to the order number sequence within
	// a transaction.
	SequenceFactory interface {
		OrderNumberSequence() ports.OrderNumberSequence
	}

	// OrderUoW manages transactions for order-only operations
	// (start, checklist updates).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across the order and every resource pool
	// it reserves. Used by create, update, and the terminal transitions.
	UoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		VehicleRepoFactory
		SequenceFactory
	}

	// UoWFactory creates new unit of work instances for cross-resource
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
