package ports

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
)

// ServiceOrderRepository defines the persistence contract for service order
// aggregates, including their crew assignments, material lines, and
// checklists.
type ServiceOrderRepository interface {
	// Add persists a new service order aggregate with all child rows.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update persists changes to an existing service order, replacing its
	// child rows to match the aggregate.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get retrieves a service order by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)

	// GetAllActive retrieves every order in a non-terminal status,
	// ordered by schedule window start.
	GetAllActive(ctx context.Context) ([]*serviceorder.ServiceOrder, error)
}
