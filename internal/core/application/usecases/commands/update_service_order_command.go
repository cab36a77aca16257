package commands

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var (
	ErrUpdateServiceOrderCommandIsNotConstructed = errors.New(
		"UpdateServiceOrderCommand must be created via NewUpdateServiceOrderCommand constructor")
	ErrAddressesMustChangeTogether = errors.New("origin and destination must be updated together")
	ErrNothingToUpdate             = errors.New("update contains no changes")
)

// UpdateServiceOrderCommand is a partial update of a non-terminal order.
// Each optional field is nil when unchanged. Vehicle changes are explicit:
// ChangeVehicle distinguishes "leave as is" from "clear the assignment"
// (ChangeVehicle true, VehicleID nil). Crew changes are explicit assign and
// unassign lists, never a blind overwrite. Materials carry the full desired
// line set; the handler reconciles it delta-by-delta against the current
// reservations.
type UpdateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	window        *kernel.TimeWindow
	origin        *serviceorder.Address
	destination   *serviceorder.Address
	notes         *string
	materials     []serviceorder.MaterialLine
	hasMaterials  bool
	changeVehicle bool
	vehicleID     *kernel.UUID
	assignCrew    []serviceorder.CrewAssignment
	unassignCrew  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateServiceOrderCommand validates and assembles a partial update.
func NewUpdateServiceOrderCommand(
	orderID kernel.UUID,
	window *kernel.TimeWindow,
	origin *serviceorder.Address,
	destination *serviceorder.Address,
	notes *string,
	materials []serviceorder.MaterialLine,
	hasMaterials bool,
	changeVehicle bool,
	vehicleID *kernel.UUID,
	assignCrew []serviceorder.CrewAssignment,
	unassignCrew []kernel.UUID,
) (UpdateServiceOrderCommand, error) {
	cmd := UpdateServiceOrderCommand{
		hasMaterials:  hasMaterials,
		changeVehicle: changeVehicle,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWindow(window),
		cmd.setAddresses(origin, destination),
		cmd.setNotes(notes),
		cmd.setMaterials(materials, hasMaterials),
		cmd.setVehicleID(changeVehicle, vehicleID),
		cmd.setCrewChanges(assignCrew, unassignCrew),
	); err != nil {
		return UpdateServiceOrderCommand{}, err
	}

	if !cmd.hasAnyChange() {
		return UpdateServiceOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("update", ErrNothingToUpdate)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateServiceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Window returns the new schedule window, nil when unchanged.
func (c UpdateServiceOrderCommand) Window() *kernel.TimeWindow { return c.window }

// Origin returns the new pickup address, nil when unchanged.
func (c UpdateServiceOrderCommand) Origin() *serviceorder.Address { return c.origin }

// Destination returns the new delivery address, nil when unchanged.
func (c UpdateServiceOrderCommand) Destination() *serviceorder.Address { return c.destination }

// Notes returns the new notes, nil when unchanged.
func (c UpdateServiceOrderCommand) Notes() *string { return c.notes }

// HasMaterials reports whether the material line set is being replaced.
func (c UpdateServiceOrderCommand) HasMaterials() bool { return c.hasMaterials }

// Materials returns the full desired material line set.
func (c UpdateServiceOrderCommand) Materials() []serviceorder.MaterialLine {
	lines := make([]serviceorder.MaterialLine, len(c.materials))
	copy(lines, c.materials)
	return lines
}

// ChangeVehicle reports whether the vehicle assignment is being changed.
func (c UpdateServiceOrderCommand) ChangeVehicle() bool { return c.changeVehicle }

// VehicleID returns the new vehicle, nil to clear the assignment.
func (c UpdateServiceOrderCommand) VehicleID() *kernel.UUID {
	if c.vehicleID == nil {
		return nil
	}
	v := *c.vehicleID
	return &v
}

// AssignCrew returns the crew assignments to add.
func (c UpdateServiceOrderCommand) AssignCrew() []serviceorder.CrewAssignment {
	crew := make([]serviceorder.CrewAssignment, len(c.assignCrew))
	copy(crew, c.assignCrew)
	return crew
}

// UnassignCrew returns the employees to remove from the crew.
func (c UpdateServiceOrderCommand) UnassignCrew() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.unassignCrew))
	copy(ids, c.unassignCrew)
	return ids
}

func (c UpdateServiceOrderCommand) hasAnyChange() bool {
	return c.window != nil ||
		c.origin != nil ||
		c.notes != nil ||
		c.hasMaterials ||
		c.changeVehicle ||
		len(c.assignCrew) > 0 ||
		len(c.unassignCrew) > 0
}

func (c *UpdateServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateServiceOrderCommand) setWindow(window *kernel.TimeWindow) error {
	if window == nil {
		return nil
	}
	if err := window.Validate(); err != nil {
		return err
	}

	w := *window
	c.window = &w
	return nil
}

func (c *UpdateServiceOrderCommand) setAddresses(origin, destination *serviceorder.Address) error {
	if origin == nil && destination == nil {
		return nil
	}
	if origin == nil || destination == nil {
		return errs.NewValueIsInvalidErrorWithCause("addresses", ErrAddressesMustChangeTogether)
	}
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}

	o, d := *origin, *destination
	c.origin, c.destination = &o, &d
	return nil
}

func (c *UpdateServiceOrderCommand) setNotes(notes *string) error {
	if notes == nil {
		return nil
	}
	n := *notes
	c.notes = &n
	return nil
}

func (c *UpdateServiceOrderCommand) setMaterials(materials []serviceorder.MaterialLine, hasMaterials bool) error {
	if !hasMaterials {
		return nil
	}

	seen := make(map[kernel.UUID]struct{}, len(materials))
	for _, line := range materials {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, dup := seen[line.MaterialID()]; dup {
			return errs.NewValueIsInvalidError("materials")
		}
		seen[line.MaterialID()] = struct{}{}
	}

	c.materials = make([]serviceorder.MaterialLine, len(materials))
	copy(c.materials, materials)
	return nil
}

func (c *UpdateServiceOrderCommand) setVehicleID(changeVehicle bool, vehicleID *kernel.UUID) error {
	if !changeVehicle {
		if vehicleID != nil {
			return errs.NewValueIsInvalidError("vehicleId")
		}
		return nil
	}
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleId", err)
	}

	v := *vehicleID
	c.vehicleID = &v
	return nil
}

func (c *UpdateServiceOrderCommand) setCrewChanges(
	assign []serviceorder.CrewAssignment,
	unassign []kernel.UUID,
) error {
	for _, assignment := range assign {
		if err := assignment.Validate(); err != nil {
			return err
		}
	}
	for _, id := range unassign {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("unassignCrew", err)
		}
	}

	c.assignCrew = make([]serviceorder.CrewAssignment, len(assign))
	copy(c.assignCrew, assign)
	c.unassignCrew = make([]kernel.UUID, len(unassign))
	copy(c.unassignCrew, unassign)
	return nil
}
