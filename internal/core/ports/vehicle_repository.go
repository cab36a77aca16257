package ports

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for the vehicle fleet.
// Allocate and Release carry the compare-and-set semantics that keep vehicle
// allocation exclusive under concurrency.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists a status change (e.g. maintenance transitions)
	// conditionally on the version the vehicle was read with.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by ID.
	// Returns ObjectNotFoundError when no such vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// Allocate performs the conditional Available -> InUse transition.
	// The update succeeds only if it affects exactly one row; otherwise
	// it fails with a ConflictError ("vehicle unavailable") and no
	// mutation, which serializes concurrent allocation attempts.
	Allocate(ctx context.Context, id kernel.UUID) error

	// Release performs InUse -> Available. Releasing an already Available
	// vehicle is a no-op; a vehicle in Maintenance is left untouched.
	Release(ctx context.Context, id kernel.UUID) error
}
