// Package stockrepo persists material stock entries and the append-only
// movement ledger. Entry writes are conditional on the optimistic version
// column; the ledger is insert-only.
package stockrepo

import (
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"

	"github.com/google/uuid"
)

// StockEntryDTO is the database row for one material's stock level.
type StockEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Available int
	Minimum   int
	Version   int
}

// TableName overrides GORM's default naming to use "stock_entries".
func (StockEntryDTO) TableName() string {
	return "stock_entries"
}

// StockMovementDTO is one immutable ledger row.
type StockMovementDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID uuid.UUID `gorm:"type:uuid;index"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	Reason     string
	OccurredAt time.Time
}

// TableName overrides GORM's default naming to use "stock_movements".
func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

func entryFromDomain(e *material.StockEntry) StockEntryDTO {
	return StockEntryDTO{
		ID:        e.ID().Bytes(),
		Name:      e.Name(),
		Available: e.Available(),
		Minimum:   e.Minimum(),
		Version:   e.Version(),
	}
}

func entryToDomain(dto StockEntryDTO) (*material.StockEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return material.RestoreStockEntry(id, dto.Name, dto.Available, dto.Minimum, dto.Version)
}

func movementFromDomain(m material.StockMovement) StockMovementDTO {
	return StockMovementDTO{
		ID:         m.ID().Bytes(),
		MaterialID: m.MaterialID().Bytes(),
		OrderID:    m.OrderID().Bytes(),
		Quantity:   m.Quantity(),
		Reason:     m.Reason(),
		OccurredAt: m.OccurredAt(),
	}
}

func movementToDomain(dto StockMovementDTO) (material.StockMovement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return material.StockMovement{}, err
	}
	materialID, err := kernel.UUIDFromBytes(dto.MaterialID[:])
	if err != nil {
		return material.StockMovement{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return material.StockMovement{}, err
	}

	return material.RestoreStockMovement(id, materialID, orderID, dto.Quantity, dto.Reason, dto.OccurredAt)
}
