package queries

import (
	"context"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCrewAvailabilityQueryHandler answers which employees are free on a
// given day. An employee is busy when assigned to a non-terminal order whose
// window overlaps the day.
type GetCrewAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewGetCrewAvailabilityQueryHandler creates a handler for availability
// queries.
func NewGetCrewAvailabilityQueryHandler(db *gorm.DB) GetCrewAvailabilityQueryHandler {
	return GetCrewAvailabilityQueryHandler{db: db}
}

// Handle executes the query for the requested day.
func (h GetCrewAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetCrewAvailabilityQuery,
) ([]GetCrewAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	y, m, d := query.Date().UTC().Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	employees := make([]GetCrewAvailabilityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name,
			o.id
		FROM employees e
		LEFT JOIN crew_assignments ca ON ca.employee_id = e.id
		LEFT JOIN orders o ON o.id = ca.order_id
			AND o.status <> ALL(?)
			AND o.window_start < ?
			AND o.window_end > ?
		ORDER BY e.name, o.id
	`, pq.Array([]int{int(serviceorder.Completed), int(serviceorder.Cancelled)}), dayEnd, dayStart).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// The join can yield several rows per employee; the first busy row wins.
	seen := make(map[kernel.UUID]int)
	for rows.Next() {
		var employeeID uuid.UUID
		var name string
		var orderID uuid.NullUUID

		if err = rows.Scan(&employeeID, &name, &orderID); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(employeeID[:])
		if idErr != nil {
			return nil, idErr
		}

		var busyOrder *kernel.UUID
		if orderID.Valid {
			o, oErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if oErr != nil {
				return nil, oErr
			}
			busyOrder = &o
		}

		if idx, ok := seen[id]; ok {
			if employees[idx].Available && busyOrder != nil {
				employees[idx].Available = false
				employees[idx].OrderID = busyOrder
			}
			continue
		}

		seen[id] = len(employees)
		employees = append(employees, GetCrewAvailabilityQueryResponse{
			EmployeeID: id,
			Name:       name,
			Available:  busyOrder == nil,
			OrderID:    busyOrder,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
