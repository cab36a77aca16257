package vehicle

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
// through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New(
	"Vehicle must be created via NewVehicle or RestoreVehicle")

// Vehicle is one truck of the fleet. Allocation is exclusive: only an
// Available vehicle can move to InUse, and the repository applies that
// transition as a conditional update so two concurrent allocations cannot
// both succeed.
type Vehicle struct {
	id      kernel.UUID
	plate   string
	status  Status
	version int

	isConstructed bool
}

// NewVehicle creates an Available vehicle.
func NewVehicle(id kernel.UUID, plate string) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if plate == "" {
		return nil, errs.NewValueIsRequiredError("plate")
	}

	return &Vehicle{
		id:            id,
		plate:         plate,
		status:        Available,
		isConstructed: true,
	}, nil
}

// RestoreVehicle rebuilds a vehicle from persistence.
func RestoreVehicle(id kernel.UUID, plate string, status Status, version int) (*Vehicle, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	v, err := NewVehicle(id, plate)
	if err != nil {
		return nil, err
	}

	v.status = status
	v.version = version
	return v, nil
}

// Validate ensures the vehicle was built through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle's identifier.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// Plate returns the license plate.
func (v *Vehicle) Plate() string { return v.plate }

// Status returns the current availability state.
func (v *Vehicle) Status() Status { return v.status }

// Version returns the optimistic-concurrency version read from storage.
func (v *Vehicle) Version() int { return v.version }

// Allocate moves the vehicle to InUse. Fails with a ConflictError
// ("vehicle unavailable") unless the current status is Available.
func (v *Vehicle) Allocate() error {
	if v.status != Available {
		return errs.NewConflictError("vehicle", v.id.String(), "vehicle unavailable")
	}

	v.status = InUse
	return nil
}

// Release moves the vehicle back to Available. Releasing an already
// Available vehicle is a no-op, not an error, so terminal transitions stay
// idempotent at the resource level. A vehicle in Maintenance stays in
// Maintenance.
func (v *Vehicle) Release() {
	if v.status == InUse {
		v.status = Available
	}
}

// SendToMaintenance takes the vehicle out of service. Fails with a
// ConflictError while the vehicle is allocated to an order.
func (v *Vehicle) SendToMaintenance() error {
	if v.status == InUse {
		return errs.NewConflictError("vehicle", v.id.String(),
			"vehicle is allocated to an order")
	}

	v.status = Maintenance
	return nil
}

// ReturnFromMaintenance puts the vehicle back in service.
func (v *Vehicle) ReturnFromMaintenance() error {
	if v.status != Maintenance {
		return errs.NewInvalidStateError("vehicle", v.status.String(), Available.String())
	}

	v.status = Available
	return nil
}
