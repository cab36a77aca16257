package orderrepo

import (
	"context"
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceOrderRepository implements ServiceOrderRepository using GORM.
type GormServiceOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceOrderRepository creates a new GORM service order repository.
func NewGormServiceOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all its child rows.
func (r *GormServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.writeChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, replacing its child rows to match the
// aggregate.
func (r *GormServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serviceOrderId", aggregate.ID().String())
	}

	if err := r.deleteChildren(ctx, aggregate.ID()); err != nil {
		return err
	}
	if err := r.writeChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its crew, material lines, and checklists.
func (r *GormServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceOrderId", id.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetAllActive retrieves every order in a non-terminal status, ordered by
// schedule window start.
func (r *GormServiceOrderRepository) GetAllActive(ctx context.Context) ([]*serviceorder.ServiceOrder, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{int(serviceorder.Completed), int(serviceorder.Cancelled)}).
		Order("window_start").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*serviceorder.ServiceOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, loadErr := r.loadAggregate(ctx, dto)
		if loadErr != nil {
			return nil, loadErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormServiceOrderRepository) loadAggregate(
	ctx context.Context,
	dto OrderDTO,
) (*serviceorder.ServiceOrder, error) {
	var crew []CrewAssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("employee_id").
		Find(&crew).Error; err != nil {
		return nil, err
	}

	var materials []MaterialLineDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("material_id").
		Find(&materials).Error; err != nil {
		return nil, err
	}

	var checklistItems []ChecklistItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&checklistItems).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, crew, materials, checklistItems)
}

func (r *GormServiceOrderRepository) writeChildren(
	ctx context.Context,
	aggregate *serviceorder.ServiceOrder,
) error {
	if crew := crewFromDomain(aggregate); len(crew) > 0 {
		if err := r.db.WithContext(ctx).Create(&crew).Error; err != nil {
			return err
		}
	}
	if materials := materialsFromDomain(aggregate); len(materials) > 0 {
		if err := r.db.WithContext(ctx).Create(&materials).Error; err != nil {
			return err
		}
	}
	if items := checklistsFromDomain(aggregate); len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormServiceOrderRepository) deleteChildren(ctx context.Context, orderID kernel.UUID) error {
	id := orderID.Bytes()
	if err := r.db.WithContext(ctx).Delete(&CrewAssignmentDTO{}, "order_id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&MaterialLineDTO{}, "order_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&ChecklistItemDTO{}, "order_id = ?", id).Error
}
