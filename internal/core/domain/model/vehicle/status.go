package vehicle

import (
	"fmt"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// Status represents a vehicle's availability state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the vehicle can be allocated to an order.
	Available

	// InUse means the vehicle is allocated to exactly one non-terminal
	// service order.
	InUse

	// Maintenance means the vehicle is out of service and cannot be
	// allocated.
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Available:   "Available",
		InUse:       "InUse",
		Maintenance: "Maintenance",
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks the Status is one of the defined states.
func (s Status) Validate() error {
	if s != Available && s != InUse && s != Maintenance {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}
