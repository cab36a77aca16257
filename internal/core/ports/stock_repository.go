package ports

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"
)

// StockRepository defines the persistence contract for material stock
// entries and the append-only movement ledger.
type StockRepository interface {
	// Add persists a new stock entry.
	Add(ctx context.Context, entry *material.StockEntry) error

	// Update writes the entry's current available quantity conditionally
	// on the version it was read with. A version mismatch (another
	// transaction updated the row meanwhile) fails with a ConflictError
	// and the caller must retry the whole operation.
	Update(ctx context.Context, entry *material.StockEntry) error

	// Get retrieves a stock entry by material ID.
	// Returns ObjectNotFoundError when the material does not exist.
	Get(ctx context.Context, id kernel.UUID) (*material.StockEntry, error)

	// AppendMovement appends one immutable ledger entry.
	AppendMovement(ctx context.Context, movement material.StockMovement) error

	// GetMovementsForOrder lists the ledger entries attributed to one
	// service order, oldest first.
	GetMovementsForOrder(ctx context.Context, orderID kernel.UUID) ([]material.StockMovement, error)
}
