package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transactional boundary of one create/update/transition
// call: every resource mutation performed through its repositories either
// fully commits or fully rolls back. Client code manages the transaction
// lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// ServiceOrderRepository returns an order repository bound to the
	// current transaction.
	ServiceOrderRepository() ServiceOrderRepository

	// StockRepository returns a stock repository bound to the current
	// transaction.
	StockRepository() StockRepository

	// VehicleRepository returns a vehicle repository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// OrderNumberSequence returns the per-year sequence bound to the
	// current transaction, so number assignment commits or rolls back
	// with the rest of the operation.
	OrderNumberSequence() OrderNumberSequence
}
