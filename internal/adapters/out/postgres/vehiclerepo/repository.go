package vehiclerepo

import (
	"context"
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/vehicle"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrStaleVehicle signals that the vehicle changed since it was read.
var ErrStaleVehicle = errors.New("vehicle was modified concurrently")

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes a status change conditionally on the version the vehicle was
// read with.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":  int(aggregate.Status()),
			"version": aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("vehicle", aggregate.ID().String(),
			"vehicle version conflict", ErrStaleVehicle)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Allocate performs the conditional Available -> InUse transition. The
// filter on the current status makes two concurrent allocations mutually
// exclusive: only one update hits a row.
func (r *GormVehicleRepository) Allocate(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(vehicle.Available)).
		Updates(map[string]any{
			"status":  int(vehicle.InUse),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.allocationFailure(ctx, id)
	}

	return nil
}

// Release performs InUse -> Available. Releasing an Available vehicle is a
// no-op; a vehicle in Maintenance is left untouched.
func (r *GormVehicleRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(vehicle.InUse)).
		Updates(map[string]any{
			"status":  int(vehicle.Available),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish "nothing to release" from "no such vehicle".
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&VehicleDTO{}).
			Where("id = ?", id.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("vehicleId", id.String())
		}
	}

	return nil
}

// allocationFailure reports why a conditional allocation matched no row.
func (r *GormVehicleRepository) allocationFailure(ctx context.Context, id kernel.UUID) error {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("vehicleId", id.String())
		}
		return err
	}

	return errs.NewConflictErrorWithCause("vehicle", id.String(), "vehicle unavailable",
		errors.New("vehicle is "+vehicle.Status(dto.Status).String()))
}
