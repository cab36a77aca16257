package directory

import (
	"context"
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientDirectory answers contract questions against the contracts
// table.
type GormClientDirectory struct {
	db *gorm.DB
}

// NewGormClientDirectory creates a contract lookup over the given
// connection.
func NewGormClientDirectory(db *gorm.DB) *GormClientDirectory {
	return &GormClientDirectory{db: db}
}

// ContractIsActive reports whether the contract exists and is active.
func (d *GormClientDirectory) ContractIsActive(ctx context.Context, contractID kernel.UUID) (bool, error) {
	if err := contractID.Validate(); err != nil {
		return false, err
	}

	var dto ContractDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", contractID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return dto.Active, nil
}

// ClientForContract resolves the client a contract belongs to.
func (d *GormClientDirectory) ClientForContract(ctx context.Context, contractID kernel.UUID) (kernel.UUID, error) {
	if err := contractID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var dto ContractDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", contractID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("contractId", contractID.String())
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.ClientID[:])
}

// GormCrewDirectory answers employee questions against the employees table.
type GormCrewDirectory struct {
	db *gorm.DB
}

// NewGormCrewDirectory creates an employee lookup over the given
// connection.
func NewGormCrewDirectory(db *gorm.DB) *GormCrewDirectory {
	return &GormCrewDirectory{db: db}
}

// EmployeeExists reports whether the employee is registered.
func (d *GormCrewDirectory) EmployeeExists(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	if err := employeeID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := d.db.WithContext(ctx).
		Model(&EmployeeDTO{}).
		Where("id = ?", employeeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GormMaterialCatalog answers material questions against the stock entry
// table, which doubles as the material catalog.
type GormMaterialCatalog struct {
	db *gorm.DB
}

// NewGormMaterialCatalog creates a material lookup over the given
// connection.
func NewGormMaterialCatalog(db *gorm.DB) *GormMaterialCatalog {
	return &GormMaterialCatalog{db: db}
}

// MaterialExists reports whether the material has a stock entry.
func (c *GormMaterialCatalog) MaterialExists(ctx context.Context, materialID kernel.UUID) (bool, error) {
	if err := materialID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := c.db.WithContext(ctx).
		Table("stock_entries").
		Where("id = ?", materialID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
