// Package orderrepo persists service order aggregates. An order spans four
// tables: the order row itself plus crew assignments, material lines, and
// checklist items, all written together so the aggregate stays consistent.
package orderrepo

import (
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
)

// OrderDTO is the database row for one service order.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number      string     `gorm:"uniqueIndex;size:16"`
	ContractID  uuid.UUID  `gorm:"type:uuid;index"`
	ClientID    uuid.UUID  `gorm:"type:uuid;index"`
	Status      int        `gorm:"index"`
	WindowStart time.Time  `gorm:"index"`
	WindowEnd   time.Time
	Origin      AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	VehicleID   *uuid.UUID `gorm:"type:uuid;index"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the embedded origin or destination address.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	ZipCode    string
	Complement string
}

// CrewAssignmentDTO is one employee assigned to an order.
type CrewAssignmentDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role       string
}

// TableName overrides GORM's default naming to use "crew_assignments".
func (CrewAssignmentDTO) TableName() string {
	return "crew_assignments"
}

// MaterialLineDTO is one reserved material line of an order.
type MaterialLineDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
}

// TableName overrides GORM's default naming to use "material_lines".
func (MaterialLineDTO) TableName() string {
	return "material_lines"
}

// ChecklistItemDTO is one checklist item of an order. Position preserves the
// item order within its checklist.
type ChecklistItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind     string    `gorm:"primaryKey;size:8"`
	Label    string    `gorm:"primaryKey"`
	Done     bool
	Position int
}

// TableName overrides GORM's default naming to use "checklist_items".
func (ChecklistItemDTO) TableName() string {
	return "checklist_items"
}

func fromDomain(o *serviceorder.ServiceOrder) OrderDTO {
	var vehicleID *uuid.UUID
	if id := o.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		Number:      o.Number().String(),
		ContractID:  o.ContractID().Bytes(),
		ClientID:    o.ClientID().Bytes(),
		Status:      int(o.Status()),
		WindowStart: o.Window().Start(),
		WindowEnd:   o.Window().End(),
		Origin:      addressFromDomain(o.Origin()),
		Destination: addressFromDomain(o.Destination()),
		VehicleID:   vehicleID,
		Notes:       o.Notes(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func addressFromDomain(a serviceorder.Address) AddressDTO {
	return AddressDTO{
		Street:     a.Street(),
		City:       a.City(),
		State:      a.State(),
		ZipCode:    a.ZipCode(),
		Complement: a.Complement(),
	}
}

func crewFromDomain(o *serviceorder.ServiceOrder) []CrewAssignmentDTO {
	crew := o.Crew()
	dtos := make([]CrewAssignmentDTO, 0, len(crew))
	for _, assignment := range crew {
		dtos = append(dtos, CrewAssignmentDTO{
			OrderID:    o.ID().Bytes(),
			EmployeeID: assignment.EmployeeID().Bytes(),
			Role:       assignment.Role(),
		})
	}
	return dtos
}

func materialsFromDomain(o *serviceorder.ServiceOrder) []MaterialLineDTO {
	lines := o.Materials()
	dtos := make([]MaterialLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, MaterialLineDTO{
			OrderID:    o.ID().Bytes(),
			MaterialID: line.MaterialID().Bytes(),
			Quantity:   line.Quantity(),
		})
	}
	return dtos
}

func checklistsFromDomain(o *serviceorder.ServiceOrder) []ChecklistItemDTO {
	var dtos []ChecklistItemDTO
	for _, kind := range []serviceorder.ChecklistKind{serviceorder.PreService, serviceorder.PostService} {
		checklist := o.PreChecklist()
		if kind == serviceorder.PostService {
			checklist = o.PostChecklist()
		}
		for i, item := range checklist.Items() {
			dtos = append(dtos, ChecklistItemDTO{
				OrderID:  o.ID().Bytes(),
				Kind:     string(kind),
				Label:    item.Label,
				Done:     item.Done,
				Position: i,
			})
		}
	}
	return dtos
}

func toDomain(
	dto OrderDTO,
	crew []CrewAssignmentDTO,
	materials []MaterialLineDTO,
	checklistItems []ChecklistItemDTO,
) (*serviceorder.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	number, err := serviceorder.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}
	contractID, err := kernel.UUIDFromBytes(dto.ContractID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}
	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vErr != nil {
			return nil, vErr
		}
		vehicleID = &vID
	}

	assignments := make([]serviceorder.CrewAssignment, 0, len(crew))
	for _, c := range crew {
		employeeID, cErr := kernel.UUIDFromBytes(c.EmployeeID[:])
		if cErr != nil {
			return nil, cErr
		}
		assignment, cErr := serviceorder.NewCrewAssignment(employeeID, c.Role)
		if cErr != nil {
			return nil, cErr
		}
		assignments = append(assignments, assignment)
	}

	lines := make([]serviceorder.MaterialLine, 0, len(materials))
	for _, m := range materials {
		materialID, mErr := kernel.UUIDFromBytes(m.MaterialID[:])
		if mErr != nil {
			return nil, mErr
		}
		line, mErr := serviceorder.NewMaterialLine(materialID, m.Quantity)
		if mErr != nil {
			return nil, mErr
		}
		lines = append(lines, line)
	}

	pre, post := checklistsToDomain(checklistItems)

	return serviceorder.RestoreServiceOrder(
		id,
		number,
		contractID,
		clientID,
		window,
		origin,
		destination,
		vehicleID,
		assignments,
		lines,
		pre,
		post,
		serviceorder.Status(dto.Status),
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func addressToDomain(dto AddressDTO) (serviceorder.Address, error) {
	return serviceorder.NewAddress(dto.Street, dto.City, dto.State, dto.ZipCode, dto.Complement)
}

// checklistsToDomain splits the flat item rows into the two checklists,
// assuming the rows arrive ordered by position.
func checklistsToDomain(items []ChecklistItemDTO) (serviceorder.Checklist, serviceorder.Checklist) {
	var preItems, postItems []serviceorder.ChecklistItem
	for _, item := range items {
		entry := serviceorder.ChecklistItem{Label: item.Label, Done: item.Done}
		if item.Kind == string(serviceorder.PreService) {
			preItems = append(preItems, entry)
		} else {
			postItems = append(postItems, entry)
		}
	}
	return serviceorder.RestoreChecklist(preItems), serviceorder.RestoreChecklist(postItems)
}
