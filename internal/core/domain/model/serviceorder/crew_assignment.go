package serviceorder

import (
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// CrewAssignment binds one employee to the order with a role label
// (e.g. "driver", "packer", "supervisor"). An employee appears at most once
// per order; the aggregate enforces uniqueness on assignment.
type CrewAssignment struct {
	employeeID kernel.UUID
	role       string
}

// NewCrewAssignment creates a validated crew assignment.
func NewCrewAssignment(employeeID kernel.UUID, role string) (CrewAssignment, error) {
	if err := employeeID.Validate(); err != nil {
		return CrewAssignment{}, err
	}
	if role == "" {
		return CrewAssignment{}, errs.NewValueIsRequiredError("role")
	}

	return CrewAssignment{employeeID: employeeID, role: role}, nil
}

// EmployeeID returns the assigned employee's identifier.
func (c CrewAssignment) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Role returns the role label of the assignment.
func (c CrewAssignment) Role() string {
	return c.role
}

// Validate returns a validation error for the zero value.
func (c CrewAssignment) Validate() error {
	if err := c.employeeID.Validate(); err != nil {
		return err
	}
	if c.role == "" {
		return errs.NewValueIsRequiredError("role")
	}
	return nil
}
