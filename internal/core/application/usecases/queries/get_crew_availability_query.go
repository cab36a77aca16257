package queries

import (
	"errors"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var ErrGetCrewAvailabilityQueryIsNotConstructed = errors.New(
	"GetCrewAvailabilityQuery must be created via NewGetCrewAvailabilityQuery constructor")

// GetCrewAvailabilityQuery lists every registered employee for one calendar
// day, marking those already committed to an active order whose schedule
// window touches that day.
type GetCrewAvailabilityQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetCrewAvailabilityQuery creates an availability query for one day.
func NewGetCrewAvailabilityQuery(date time.Time) (GetCrewAvailabilityQuery, error) {
	if date.IsZero() {
		return GetCrewAvailabilityQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetCrewAvailabilityQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCrewAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetCrewAvailabilityQueryIsNotConstructed)
}

// Date returns the requested day.
func (q GetCrewAvailabilityQuery) Date() time.Time {
	return q.date
}

// GetCrewAvailabilityQueryResponse is one employee's availability for the
// requested day. OrderID is set when the employee is busy.
type GetCrewAvailabilityQueryResponse struct {
	EmployeeID kernel.UUID
	Name       string
	Available  bool
	OrderID    *kernel.UUID
}
