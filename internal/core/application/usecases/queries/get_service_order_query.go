// Package queries contains the read side of the service order core. Query
// handlers bypass the aggregates and read straight from the database with
// raw SQL, returning flat read models shaped for the transport layer.
package queries

import (
	"errors"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var ErrGetServiceOrderQueryIsNotConstructed = errors.New(
	"GetServiceOrderQuery must be created via NewGetServiceOrderQuery constructor")

// GetServiceOrderQuery retrieves one service order with its crew, material
// lines, and checklists.
type GetServiceOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetServiceOrderQuery creates a query for one order.
func NewGetServiceOrderQuery(orderID kernel.UUID) (GetServiceOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetServiceOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetServiceOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetServiceOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetServiceOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AddressResponse is the flat address read model.
type AddressResponse struct {
	Street     string
	City       string
	State      string
	ZipCode    string
	Complement string
}

// CrewMemberResponse is one crew assignment of the order.
type CrewMemberResponse struct {
	EmployeeID kernel.UUID
	Role       string
}

// MaterialLineResponse is one reserved material line of the order.
type MaterialLineResponse struct {
	MaterialID kernel.UUID
	Quantity   int
}

// ChecklistItemResponse is one checklist item with its done flag.
type ChecklistItemResponse struct {
	Label string
	Done  bool
}

// GetServiceOrderQueryResponse is the full order read model.
type GetServiceOrderQueryResponse struct {
	ID            kernel.UUID
	Number        string
	ContractID    kernel.UUID
	ClientID      kernel.UUID
	Status        string
	WindowStart   time.Time
	WindowEnd     time.Time
	Origin        AddressResponse
	Destination   AddressResponse
	VehicleID     *kernel.UUID
	Crew          []CrewMemberResponse
	Materials     []MaterialLineResponse
	PreChecklist  []ChecklistItemResponse
	PostChecklist []ChecklistItemResponse
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
