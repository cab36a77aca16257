package http

import (
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
)

// AddressRequest is the JSON shape of an origin or destination address.
type AddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Complement string `json:"complement"`
}

func (r AddressRequest) toDomain() (serviceorder.Address, error) {
	return serviceorder.NewAddress(r.Street, r.City, r.State, r.ZipCode, r.Complement)
}

// CrewAssignmentRequest is one requested crew member.
type CrewAssignmentRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,uuid"`
	Role       string `json:"role" validate:"required"`
}

// MaterialLineRequest is one requested material reservation.
type MaterialLineRequest struct {
	MaterialID string `json:"materialId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ContractID    string                  `json:"contractId" validate:"required,uuid"`
	WindowStart   time.Time               `json:"windowStart" validate:"required"`
	WindowEnd     time.Time               `json:"windowEnd" validate:"required"`
	Origin        AddressRequest          `json:"origin"`
	Destination   AddressRequest          `json:"destination"`
	Crew          []CrewAssignmentRequest `json:"crew" validate:"min=1,dive"`
	Materials     []MaterialLineRequest   `json:"materials" validate:"dive"`
	VehicleID     *string                 `json:"vehicleId" validate:"omitempty,uuid"`
	PreChecklist  []string                `json:"preChecklist"`
	PostChecklist []string                `json:"postChecklist"`
	Notes         string                  `json:"notes"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/{orderId}. Absent
// fields leave the order unchanged. ChangeVehicle with a null vehicleId
// clears the assignment; Materials, when present, is the full desired line
// set.
type UpdateOrderRequest struct {
	WindowStart   *time.Time              `json:"windowStart"`
	WindowEnd     *time.Time              `json:"windowEnd"`
	Origin        *AddressRequest         `json:"origin"`
	Destination   *AddressRequest         `json:"destination"`
	Notes         *string                 `json:"notes"`
	Materials     *[]MaterialLineRequest  `json:"materials" validate:"omitempty,dive"`
	ChangeVehicle bool                    `json:"changeVehicle"`
	VehicleID     *string                 `json:"vehicleId" validate:"omitempty,uuid"`
	AssignCrew    []CrewAssignmentRequest `json:"assignCrew" validate:"dive"`
	UnassignCrew  []string                `json:"unassignCrew" validate:"dive,uuid"`
}

// ChecklistItemRequest flips one labeled checklist item.
type ChecklistItemRequest struct {
	Label string `json:"label" validate:"required"`
	Done  bool   `json:"done"`
}

// UpdateChecklistRequest is the body of
// PUT /api/v1/orders/{orderId}/checklists/{kind}.
type UpdateChecklistRequest struct {
	Items []ChecklistItemRequest `json:"items" validate:"min=1,dive"`
}

func parseUUID(s string) (kernel.UUID, error) {
	return kernel.UUIDFromString(s)
}

func parseOptionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func crewToDomain(requests []CrewAssignmentRequest) ([]serviceorder.CrewAssignment, error) {
	crew := make([]serviceorder.CrewAssignment, 0, len(requests))
	for _, r := range requests {
		employeeID, err := parseUUID(r.EmployeeID)
		if err != nil {
			return nil, err
		}
		assignment, err := serviceorder.NewCrewAssignment(employeeID, r.Role)
		if err != nil {
			return nil, err
		}
		crew = append(crew, assignment)
	}
	return crew, nil
}

func materialsToDomain(requests []MaterialLineRequest) ([]serviceorder.MaterialLine, error) {
	lines := make([]serviceorder.MaterialLine, 0, len(requests))
	for _, r := range requests {
		materialID, err := parseUUID(r.MaterialID)
		if err != nil {
			return nil, err
		}
		line, err := serviceorder.NewMaterialLine(materialID, r.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
