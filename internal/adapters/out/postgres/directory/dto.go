// Package directory implements the read-only collaborator lookups the order
// core needs: contracts, employees, and the material catalog. These tables
// are owned by other back-office subsystems; this package only checks
// existence and activity.
package directory

import (
	"github.com/google/uuid"
)

// ContractDTO is the slice of the contract registry the order core reads.
type ContractDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID uuid.UUID `gorm:"type:uuid;index"`
	Active   bool
}

// TableName overrides GORM's default naming to use "contracts".
func (ContractDTO) TableName() string {
	return "contracts"
}

// EmployeeDTO is the slice of the staff registry the order core reads.
type EmployeeDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"index"`
}

// TableName overrides GORM's default naming to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}
