package queries

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServiceOrderQueryHandler reads one order and its child rows directly
// from the database.
type GetServiceOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceOrderQueryHandler creates a handler for single-order reads.
func NewGetServiceOrderQueryHandler(db *gorm.DB) GetServiceOrderQueryHandler {
	return GetServiceOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist.
func (h GetServiceOrderQueryHandler) Handle(
	ctx context.Context,
	query GetServiceOrderQuery,
) (GetServiceOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetServiceOrderQueryResponse{}, err
	}

	if resp.Crew, err = h.readCrew(ctx, query.OrderID()); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	if resp.Materials, err = h.readMaterials(ctx, query.OrderID()); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	if resp.PreChecklist, err = h.readChecklist(ctx, query.OrderID(), serviceorder.PreService); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	if resp.PostChecklist, err = h.readChecklist(ctx, query.OrderID(), serviceorder.PostService); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetServiceOrderQueryHandler) readOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetServiceOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			contract_id,
			client_id,
			status,
			window_start,
			window_end,
			origin_street, origin_city, origin_state, origin_zip_code, origin_complement,
			destination_street, destination_city, destination_state, destination_zip_code, destination_complement,
			vehicle_id,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetServiceOrderQueryResponse{}, err
		}
		return GetServiceOrderQueryResponse{},
			errs.NewObjectNotFoundError("serviceOrderId", orderID.String())
	}

	var resp GetServiceOrderQueryResponse
	var id uuid.UUID
	var contractID, clientID uuid.UUID
	var vehicleID uuid.NullUUID
	var status int

	err = rows.Scan(
		&id,
		&resp.Number,
		&contractID,
		&clientID,
		&status,
		&resp.WindowStart,
		&resp.WindowEnd,
		&resp.Origin.Street, &resp.Origin.City, &resp.Origin.State,
		&resp.Origin.ZipCode, &resp.Origin.Complement,
		&resp.Destination.Street, &resp.Destination.City, &resp.Destination.State,
		&resp.Destination.ZipCode, &resp.Destination.Complement,
		&vehicleID,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetServiceOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	if resp.ContractID, err = kernel.UUIDFromBytes(contractID[:]); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	if vehicleID.Valid {
		v, idErr := kernel.UUIDFromBytes(vehicleID.UUID[:])
		if idErr != nil {
			return GetServiceOrderQueryResponse{}, idErr
		}
		resp.VehicleID = &v
	}
	resp.Status = serviceorder.Status(status).String()

	return resp, rows.Err()
}

func (h GetServiceOrderQueryHandler) readCrew(
	ctx context.Context,
	orderID kernel.UUID,
) ([]CrewMemberResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT employee_id, role
		FROM crew_assignments
		WHERE order_id = ?
		ORDER BY employee_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crew := make([]CrewMemberResponse, 0)
	for rows.Next() {
		var member CrewMemberResponse
		var employeeID uuid.UUID

		if err = rows.Scan(&employeeID, &member.Role); err != nil {
			return nil, err
		}
		if member.EmployeeID, err = kernel.UUIDFromBytes(employeeID[:]); err != nil {
			return nil, err
		}
		crew = append(crew, member)
	}

	return crew, rows.Err()
}

func (h GetServiceOrderQueryHandler) readMaterials(
	ctx context.Context,
	orderID kernel.UUID,
) ([]MaterialLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT material_id, quantity
		FROM material_lines
		WHERE order_id = ?
		ORDER BY material_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]MaterialLineResponse, 0)
	for rows.Next() {
		var line MaterialLineResponse
		var materialID uuid.UUID

		if err = rows.Scan(&materialID, &line.Quantity); err != nil {
			return nil, err
		}
		if line.MaterialID, err = kernel.UUIDFromBytes(materialID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (h GetServiceOrderQueryHandler) readChecklist(
	ctx context.Context,
	orderID kernel.UUID,
	kind serviceorder.ChecklistKind,
) ([]ChecklistItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT label, done
		FROM checklist_items
		WHERE order_id = ? AND kind = ?
		ORDER BY position
	`, orderID.Bytes(), string(kind)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ChecklistItemResponse, 0)
	for rows.Next() {
		var item ChecklistItemResponse
		if err = rows.Scan(&item.Label, &item.Done); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
