package queries

import (
	"context"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockMaterialsQueryHandler lists materials at or below their minimum
// threshold, sorted by name.
type GetLowStockMaterialsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockMaterialsQueryHandler creates a handler for low-stock
// queries.
func NewGetLowStockMaterialsQueryHandler(db *gorm.DB) GetLowStockMaterialsQueryHandler {
	return GetLowStockMaterialsQueryHandler{db: db}
}

// Handle executes the query to retrieve all low-stock materials.
func (h GetLowStockMaterialsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockMaterialsQuery,
) ([]GetLowStockMaterialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	materials := make([]GetLowStockMaterialsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			available,
			minimum
		FROM stock_entries
		WHERE available <= minimum
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetLowStockMaterialsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Available,
			&entry.Minimum,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		materials = append(materials, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
