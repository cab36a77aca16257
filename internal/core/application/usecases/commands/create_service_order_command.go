package commands

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var (
	ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
		"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor")
	ErrCrewIsRequired = errors.New("at least one crew assignment is required")
)

// CreateServiceOrderCommand carries everything needed to turn a signed
// contract into a scheduled service order: the schedule window, addresses,
// crew, material reservation lines, optional vehicle, and the two
// checklists.
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	contractID    kernel.UUID
	window        kernel.TimeWindow
	origin        serviceorder.Address
	destination   serviceorder.Address
	crew          []serviceorder.CrewAssignment
	materials     []serviceorder.MaterialLine
	vehicleID     *kernel.UUID
	preChecklist  []string
	postChecklist []string
	notes         string

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand validates and assembles a creation command.
// Crew must contain at least one assignment with no duplicate employees;
// material lines must not repeat a material.
func NewCreateServiceOrderCommand(
	contractID kernel.UUID,
	window kernel.TimeWindow,
	origin serviceorder.Address,
	destination serviceorder.Address,
	crew []serviceorder.CrewAssignment,
	materials []serviceorder.MaterialLine,
	vehicleID *kernel.UUID,
	preChecklist []string,
	postChecklist []string,
	notes string,
) (CreateServiceOrderCommand, error) {
	cmd := CreateServiceOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setWindow(window),
		cmd.setAddresses(origin, destination),
		cmd.setCrew(crew),
		cmd.setMaterials(materials),
		cmd.setVehicleID(vehicleID),
		cmd.setChecklists(preChecklist, postChecklist),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

// ContractID returns the contract the order is derived from.
func (c CreateServiceOrderCommand) ContractID() kernel.UUID { return c.contractID }

// Window returns the requested schedule window.
func (c CreateServiceOrderCommand) Window() kernel.TimeWindow { return c.window }

// Origin returns the pickup address.
func (c CreateServiceOrderCommand) Origin() serviceorder.Address { return c.origin }

// Destination returns the delivery address.
func (c CreateServiceOrderCommand) Destination() serviceorder.Address { return c.destination }

// Crew returns the requested crew assignments.
func (c CreateServiceOrderCommand) Crew() []serviceorder.CrewAssignment {
	crew := make([]serviceorder.CrewAssignment, len(c.crew))
	copy(crew, c.crew)
	return crew
}

// Materials returns the requested material reservation lines.
func (c CreateServiceOrderCommand) Materials() []serviceorder.MaterialLine {
	lines := make([]serviceorder.MaterialLine, len(c.materials))
	copy(lines, c.materials)
	return lines
}

// VehicleID returns the requested vehicle, nil when none was requested.
func (c CreateServiceOrderCommand) VehicleID() *kernel.UUID {
	if c.vehicleID == nil {
		return nil
	}
	v := *c.vehicleID
	return &v
}

// PreChecklist returns the pre-service checklist item labels.
func (c CreateServiceOrderCommand) PreChecklist() []string { return c.preChecklist }

// PostChecklist returns the post-service checklist item labels.
func (c CreateServiceOrderCommand) PostChecklist() []string { return c.postChecklist }

// Notes returns the free-text notes.
func (c CreateServiceOrderCommand) Notes() string { return c.notes }

func (c *CreateServiceOrderCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *CreateServiceOrderCommand) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.window = window
	return nil
}

func (c *CreateServiceOrderCommand) setAddresses(origin, destination serviceorder.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}

	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateServiceOrderCommand) setCrew(crew []serviceorder.CrewAssignment) error {
	if len(crew) == 0 {
		return ErrCrewIsRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(crew))
	for _, assignment := range crew {
		if err := assignment.Validate(); err != nil {
			return err
		}
		if _, dup := seen[assignment.EmployeeID()]; dup {
			return errs.NewConflictError("crew assignment", assignment.EmployeeID().String(),
				"employee listed more than once")
		}
		seen[assignment.EmployeeID()] = struct{}{}
	}

	c.crew = make([]serviceorder.CrewAssignment, len(crew))
	copy(c.crew, crew)
	return nil
}

func (c *CreateServiceOrderCommand) setMaterials(materials []serviceorder.MaterialLine) error {
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

func (c *CreateServiceOrderCommand) setVehicleID(vehicleID *kernel.UUID) error {
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

func (c *CreateServiceOrderCommand) setChecklists(pre, post []string) error {
	// Construction is re-validated here so a malformed checklist fails the
	// command, not the handler.
	if _, err := serviceorder.NewChecklist(pre); err != nil {
		return err
	}
	if _, err := serviceorder.NewChecklist(post); err != nil {
		return err
	}

	c.preChecklist = append([]string(nil), pre...)
	c.postChecklist = append([]string(nil), post...)
	return nil
}
