package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

var (
	// ErrServiceOrderIsNotConstructed is returned when a ServiceOrder was
	// not created through NewServiceOrder or RestoreServiceOrder.
	ErrServiceOrderIsNotConstructed = errors.New(
		"ServiceOrder must be created via NewServiceOrder or RestoreServiceOrder")

	// ErrPostChecklistIncomplete blocks completion while any post-service
	// checklist item is unchecked.
	ErrPostChecklistIncomplete = errors.New("post-service checklist is not complete")
)

// ServiceOrder is the aggregate root for one scheduled moving job. It carries
// the reserved resource references (vehicle, crew, material lines), the two
// checklists, and the lifecycle status.
//
// Invariants:
//   - Must be created through NewServiceOrder or RestoreServiceOrder
//   - An employee appears at most once in the crew
//   - A material appears at most once in the reservation lines
//   - No mutation is accepted once the status is terminal
//   - Terminal orders never reference a vehicle (it was released on the
//     terminal transition)
type ServiceOrder struct {
	id          kernel.UUID
	number      OrderNumber
	contractID  kernel.UUID
	clientID    kernel.UUID
	window      kernel.TimeWindow
	origin      Address
	destination Address

	vehicleID *kernel.UUID
	crew      []CrewAssignment
	materials []MaterialLine

	preChecklist  Checklist
	postChecklist Checklist

	status    Status
	notes     string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewServiceOrder creates a new order in Scheduled status. Crew, materials,
// and the vehicle are attached afterwards by the creating use case, inside
// the same unit of work that reserves the underlying resources.
func NewServiceOrder(
	id kernel.UUID,
	number OrderNumber,
	contractID kernel.UUID,
	clientID kernel.UUID,
	window kernel.TimeWindow,
	origin Address,
	destination Address,
	preChecklist Checklist,
	postChecklist Checklist,
	notes string,
) (*ServiceOrder, error) {
	o := &ServiceOrder{
		status:        Scheduled,
		preChecklist:  preChecklist,
		postChecklist: postChecklist,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setContractID(contractID),
		o.setClientID(clientID),
		o.setWindow(window),
		o.setAddresses(origin, destination),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreServiceOrder rebuilds an aggregate from persistence. All fields are
// taken as stored; cross-field consistency (valid status, terminal orders
// carrying no vehicle) is re-checked to catch corrupted rows early.
func RestoreServiceOrder(
	id kernel.UUID,
	number OrderNumber,
	contractID kernel.UUID,
	clientID kernel.UUID,
	window kernel.TimeWindow,
	origin Address,
	destination Address,
	vehicleID *kernel.UUID,
	crew []CrewAssignment,
	materials []MaterialLine,
	preChecklist Checklist,
	postChecklist Checklist,
	status Status,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*ServiceOrder, error) {
	o := &ServiceOrder{
		preChecklist:  preChecklist,
		postChecklist: postChecklist,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setContractID(contractID),
		o.setClientID(clientID),
		o.setWindow(window),
		o.setAddresses(origin, destination),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return nil, err
		}
		if status.IsTerminal() {
			return nil, errs.NewValueIsInvalidErrorWithCause("vehicleId",
				fmt.Errorf("terminal order %s still references a vehicle", number))
		}
		v := *vehicleID
		o.vehicleID = &v
	}

	for _, assignment := range crew {
		if err := o.addCrewMember(assignment); err != nil {
			return nil, err
		}
	}
	if err := o.setMaterialLines(materials); err != nil {
		return nil, err
	}

	// addCrewMember and setMaterialLines touch updatedAt; restore the
	// persisted timestamps last so they win.
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the aggregate was built through a constructor.
func (o *ServiceOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrServiceOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *ServiceOrder) ID() kernel.UUID { return o.id }

// Number returns the year-scoped order number.
func (o *ServiceOrder) Number() OrderNumber { return o.number }

// ContractID returns the signed contract this order was derived from.
func (o *ServiceOrder) ContractID() kernel.UUID { return o.contractID }

// ClientID returns the client the job is performed for.
func (o *ServiceOrder) ClientID() kernel.UUID { return o.clientID }

// Window returns the scheduled date/time window.
func (o *ServiceOrder) Window() kernel.TimeWindow { return o.window }

// Origin returns the pickup address.
func (o *ServiceOrder) Origin() Address { return o.origin }

// Destination returns the delivery address.
func (o *ServiceOrder) Destination() Address { return o.destination }

// VehicleID returns the assigned vehicle's ID, nil if none is assigned.
func (o *ServiceOrder) VehicleID() *kernel.UUID {
	if o.vehicleID == nil {
		return nil
	}
	v := *o.vehicleID
	return &v
}

// Crew returns a copy of the crew assignments.
func (o *ServiceOrder) Crew() []CrewAssignment {
	crew := make([]CrewAssignment, len(o.crew))
	copy(crew, o.crew)
	return crew
}

// Materials returns a copy of the material reservation lines.
func (o *ServiceOrder) Materials() []MaterialLine {
	lines := make([]MaterialLine, len(o.materials))
	copy(lines, o.materials)
	return lines
}

// PreChecklist returns the pre-service checklist.
func (o *ServiceOrder) PreChecklist() Checklist { return o.preChecklist }

// PostChecklist returns the post-service checklist.
func (o *ServiceOrder) PostChecklist() Checklist { return o.postChecklist }

// Status returns the current lifecycle status.
func (o *ServiceOrder) Status() Status { return o.status }

// Notes returns the free-text notes.
func (o *ServiceOrder) Notes() string { return o.notes }

// CreatedAt returns the creation timestamp (UTC).
func (o *ServiceOrder) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp (UTC).
func (o *ServiceOrder) UpdatedAt() time.Time { return o.updatedAt }

// ensureMutable rejects any mutation of a terminal order.
func (o *ServiceOrder) ensureMutable() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("service order", o.status.String(), "")
	}
	return nil
}

// AssignCrewMember adds one crew assignment. Fails with a ConflictError if
// the employee is already assigned to this order.
func (o *ServiceOrder) AssignCrewMember(assignment CrewAssignment) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	return o.addCrewMember(assignment)
}

func (o *ServiceOrder) addCrewMember(assignment CrewAssignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}
	for _, existing := range o.crew {
		if existing.EmployeeID().IsEqual(assignment.EmployeeID()) {
			return errs.NewConflictError("crew assignment", assignment.EmployeeID().String(),
				"employee already assigned to this order")
		}
	}

	o.crew = append(o.crew, assignment)
	o.touch()
	return nil
}

// UnassignCrewMember removes the assignment of the given employee. Fails
// with ObjectNotFoundError when the employee is not on the crew.
func (o *ServiceOrder) UnassignCrewMember(employeeID kernel.UUID) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := employeeID.Validate(); err != nil {
		return err
	}

	for i, existing := range o.crew {
		if existing.EmployeeID().IsEqual(employeeID) {
			o.crew = append(o.crew[:i], o.crew[i+1:]...)
			o.touch()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("crew assignment", employeeID.String())
}

// AssignVehicle records the vehicle reserved for this order. The allocation
// itself (Available -> InUse) is performed by the vehicle allocator inside
// the same unit of work.
func (o *ServiceOrder) AssignVehicle(vehicleID kernel.UUID) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	v := vehicleID
	o.vehicleID = &v
	o.touch()
	return nil
}

// ClearVehicle drops the vehicle reference, e.g. when the update use case
// swaps vehicles. Clearing when no vehicle is assigned is a no-op.
func (o *ServiceOrder) ClearVehicle() error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	o.vehicleID = nil
	o.touch()
	return nil
}

// SetMaterialLines replaces the reservation lines after the resource
// reconciler has applied the corresponding stock deltas.
func (o *ServiceOrder) SetMaterialLines(lines []MaterialLine) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	return o.setMaterialLines(lines)
}

func (o *ServiceOrder) setMaterialLines(lines []MaterialLine) error {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, dup := seen[line.MaterialID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("materials",
				fmt.Errorf("material %s appears more than once", line.MaterialID()))
		}
		seen[line.MaterialID()] = struct{}{}
	}

	o.materials = make([]MaterialLine, len(lines))
	copy(o.materials, lines)
	o.touch()
	return nil
}

// Reschedule moves the order to a new schedule window.
func (o *ServiceOrder) Reschedule(window kernel.TimeWindow) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := window.Validate(); err != nil {
		return err
	}

	o.window = window
	o.touch()
	return nil
}

// SetAddresses updates origin and destination.
func (o *ServiceOrder) SetAddresses(origin, destination Address) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := o.setAddresses(origin, destination); err != nil {
		return err
	}
	o.touch()
	return nil
}

// SetNotes replaces the free-text notes.
func (o *ServiceOrder) SetNotes(notes string) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	o.notes = notes
	o.touch()
	return nil
}

// SetChecklistItem updates the done flag of one item on the named checklist.
func (o *ServiceOrder) SetChecklistItem(kind ChecklistKind, label string, done bool) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := kind.Validate(); err != nil {
		return err
	}

	var err error
	switch kind {
	case PreService:
		err = o.preChecklist.SetDone(label, done)
	case PostService:
		err = o.postChecklist.SetDone(label, done)
	}
	if err != nil {
		return err
	}

	o.touch()
	return nil
}

// Start transitions Scheduled -> InProgress. No resource side effects.
func (o *ServiceOrder) Start() error {
	newStatus, err := o.status.TransitionTo(InProgress)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete transitions InProgress -> Completed. Every post-service checklist
// item must be done. Reserved materials are considered consumed by the job;
// the vehicle reference is dropped because the allocator releases it in the
// same unit of work.
func (o *ServiceOrder) Complete() error {
	if !o.postChecklist.AllDone() {
		return errs.NewInvalidStateErrorWithCause("service order",
			o.status.String(), Completed.String(), ErrPostChecklistIncomplete)
	}

	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = nil
	o.touch()
	return nil
}

// Cancel transitions Scheduled/InProgress -> Cancelled. Still-reserved
// materials are returned to stock and the vehicle is released by the
// orchestrating use case; crew assignments remain as historical record.
func (o *ServiceOrder) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = nil
	o.touch()
	return nil
}

func (o *ServiceOrder) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ServiceOrder) setNumber(number OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *ServiceOrder) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	o.contractID = contractID
	return nil
}

func (o *ServiceOrder) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	o.clientID = clientID
	return nil
}

func (o *ServiceOrder) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	o.window = window
	return nil
}

func (o *ServiceOrder) setAddresses(origin, destination Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}

	o.origin = origin
	o.destination = destination
	return nil
}
