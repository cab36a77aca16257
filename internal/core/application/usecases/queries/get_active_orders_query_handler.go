package queries

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists non-terminal orders sorted by schedule
// window start.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			client_id,
			status,
			window_start,
			window_end,
			vehicle_id
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY window_start
	`, serviceorder.Completed, serviceorder.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetActiveOrdersQueryResponse
		var id, clientID uuid.UUID
		var vehicleID uuid.NullUUID
		var status int

		err = rows.Scan(
			&id,
			&order.Number,
			&clientID,
			&status,
			&order.WindowStart,
			&order.WindowEnd,
			&vehicleID,
		)
		if err != nil {
			return nil, err
		}

		if order.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if order.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if vehicleID.Valid {
			v, idErr := kernel.UUIDFromBytes(vehicleID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			order.VehicleID = &v
		}
		order.Status = serviceorder.Status(status).String()

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
