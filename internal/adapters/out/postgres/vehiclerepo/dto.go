// Package vehiclerepo persists the vehicle fleet. Allocation runs as a
// conditional update on the status column, which is what keeps a vehicle on
// at most one active order under concurrency.
package vehiclerepo

import (
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the database row for one vehicle.
type VehicleDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate   string    `gorm:"uniqueIndex"`
	Status  int       `gorm:"index"`
	Version int
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:      v.ID().Bytes(),
		Plate:   v.Plate(),
		Status:  int(v.Status()),
		Version: v.Version(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreVehicle(id, dto.Plate, vehicle.Status(dto.Status), dto.Version)
}
