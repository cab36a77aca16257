package http

import (
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/queries"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
)

// AddressResponse is the JSON shape of an address.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	ZipCode    string `json:"zipCode,omitempty"`
	Complement string `json:"complement,omitempty"`
}

// CrewMemberResponse is one crew assignment.
type CrewMemberResponse struct {
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
}

// MaterialLineResponse is one reserved material line.
type MaterialLineResponse struct {
	MaterialID string `json:"materialId"`
	Quantity   int    `json:"quantity"`
}

// ChecklistItemResponse is one checklist item.
type ChecklistItemResponse struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// OrderResponse is the full JSON rendering of a service order.
type OrderResponse struct {
	ID            string                  `json:"id"`
	Number        string                  `json:"number"`
	ContractID    string                  `json:"contractId"`
	ClientID      string                  `json:"clientId"`
	Status        string                  `json:"status"`
	WindowStart   time.Time               `json:"windowStart"`
	WindowEnd     time.Time               `json:"windowEnd"`
	Origin        AddressResponse         `json:"origin"`
	Destination   AddressResponse         `json:"destination"`
	VehicleID     *string                 `json:"vehicleId,omitempty"`
	Crew          []CrewMemberResponse    `json:"crew"`
	Materials     []MaterialLineResponse  `json:"materials"`
	PreChecklist  []ChecklistItemResponse `json:"preChecklist"`
	PostChecklist []ChecklistItemResponse `json:"postChecklist"`
	Notes         string                  `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// ActiveOrderResponse is one row of the active order list.
type ActiveOrderResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	ClientID    string    `json:"clientId"`
	Status      string    `json:"status"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`
	VehicleID   *string   `json:"vehicleId,omitempty"`
}

// LowStockMaterialResponse is one material running low.
type LowStockMaterialResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available int    `json:"available"`
	Minimum   int    `json:"minimum"`
}

// CrewAvailabilityResponse is one employee's availability for a day.
type CrewAvailabilityResponse struct {
	EmployeeID string  `json:"employeeId"`
	Name       string  `json:"name"`
	Available  bool    `json:"available"`
	OrderID    *string `json:"orderId,omitempty"`
}

func orderFromAggregate(o *serviceorder.ServiceOrder) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID().String(),
		Number:      o.Number().String(),
		ContractID:  o.ContractID().String(),
		ClientID:    o.ClientID().String(),
		Status:      o.Status().String(),
		WindowStart: o.Window().Start(),
		WindowEnd:   o.Window().End(),
		Origin:      addressFromAggregate(o.Origin()),
		Destination: addressFromAggregate(o.Destination()),
		Notes:       o.Notes(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}

	if vehicleID := o.VehicleID(); vehicleID != nil {
		v := vehicleID.String()
		resp.VehicleID = &v
	}

	resp.Crew = make([]CrewMemberResponse, 0, len(o.Crew()))
	for _, assignment := range o.Crew() {
		resp.Crew = append(resp.Crew, CrewMemberResponse{
			EmployeeID: assignment.EmployeeID().String(),
			Role:       assignment.Role(),
		})
	}

	resp.Materials = make([]MaterialLineResponse, 0, len(o.Materials()))
	for _, line := range o.Materials() {
		resp.Materials = append(resp.Materials, MaterialLineResponse{
			MaterialID: line.MaterialID().String(),
			Quantity:   line.Quantity(),
		})
	}

	resp.PreChecklist = checklistFromItems(o.PreChecklist().Items())
	resp.PostChecklist = checklistFromItems(o.PostChecklist().Items())
	return resp
}

func addressFromAggregate(a serviceorder.Address) AddressResponse {
	return AddressResponse{
		Street:     a.Street(),
		City:       a.City(),
		State:      a.State(),
		ZipCode:    a.ZipCode(),
		Complement: a.Complement(),
	}
}

func checklistFromItems(items []serviceorder.ChecklistItem) []ChecklistItemResponse {
	responses := make([]ChecklistItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ChecklistItemResponse{Label: item.Label, Done: item.Done})
	}
	return responses
}

func orderFromReadModel(m queries.GetServiceOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:          m.ID.String(),
		Number:      m.Number,
		ContractID:  m.ContractID.String(),
		ClientID:    m.ClientID.String(),
		Status:      m.Status,
		WindowStart: m.WindowStart,
		WindowEnd:   m.WindowEnd,
		Origin:      addressFromReadModel(m.Origin),
		Destination: addressFromReadModel(m.Destination),
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.VehicleID != nil {
		v := m.VehicleID.String()
		resp.VehicleID = &v
	}

	resp.Crew = make([]CrewMemberResponse, 0, len(m.Crew))
	for _, member := range m.Crew {
		resp.Crew = append(resp.Crew, CrewMemberResponse{
			EmployeeID: member.EmployeeID.String(),
			Role:       member.Role,
		})
	}

	resp.Materials = make([]MaterialLineResponse, 0, len(m.Materials))
	for _, line := range m.Materials {
		resp.Materials = append(resp.Materials, MaterialLineResponse{
			MaterialID: line.MaterialID.String(),
			Quantity:   line.Quantity,
		})
	}

	resp.PreChecklist = checklistFromReadModel(m.PreChecklist)
	resp.PostChecklist = checklistFromReadModel(m.PostChecklist)
	return resp
}

func addressFromReadModel(a queries.AddressResponse) AddressResponse {
	return AddressResponse{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		Complement: a.Complement,
	}
}

func checklistFromReadModel(items []queries.ChecklistItemResponse) []ChecklistItemResponse {
	responses := make([]ChecklistItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ChecklistItemResponse{Label: item.Label, Done: item.Done})
	}
	return responses
}
