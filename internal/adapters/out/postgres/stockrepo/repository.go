package stockrepo

import (
	"context"
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/material"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrStaleStockEntry signals that the entry changed since it was read.
var ErrStaleStockEntry = errors.New("stock entry was modified concurrently")

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock entry.
func (r *GormStockRepository) Add(ctx context.Context, entry *material.StockEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Update writes the entry conditionally on the version it was read with. A
// concurrent writer bumps the version, the condition then matches no row,
// and the caller gets a ConflictError to retry the whole operation.
func (r *GormStockRepository) Update(ctx context.Context, entry *material.StockEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StockEntryDTO{}).
		Where("id = ? AND version = ?", entry.ID().Bytes(), entry.Version()).
		Updates(map[string]any{
			"available": entry.Available(),
			"minimum":   entry.Minimum(),
			"version":   entry.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("material", entry.ID().String(),
			"stock entry version conflict", ErrStaleStockEntry)
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Get retrieves a stock entry by material ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*material.StockEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("materialId", id.String())
		}
		return nil, err
	}

	return entryToDomain(dto)
}

// AppendMovement appends one immutable ledger row.
func (r *GormStockRepository) AppendMovement(ctx context.Context, movement material.StockMovement) error {
	dto := movementFromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetMovementsForOrder lists the ledger rows attributed to one order,
// oldest first.
func (r *GormStockRepository) GetMovementsForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]material.StockMovement, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockMovementDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	movements := make([]material.StockMovement, 0, len(dtos))
	for _, dto := range dtos {
		movement, mErr := movementToDomain(dto)
		if mErr != nil {
			return nil, mErr
		}
		movements = append(movements, movement)
	}

	return movements, nil
}
