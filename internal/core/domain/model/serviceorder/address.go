package serviceorder

import (
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// Address is the origin or destination of a moving job.
type Address struct {
	street     string
	city       string
	state      string
	zipCode    string
	complement string
}

// NewAddress creates a validated address. Street and city are required;
// state, zip code, and complement are optional free text.
func NewAddress(street, city, state, zipCode, complement string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:     street,
		city:       city,
		state:      state,
		zipCode:    zipCode,
		complement: complement,
	}, nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or region, possibly empty.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code, possibly empty.
func (a Address) ZipCode() string { return a.zipCode }

// Complement returns the extra address line, possibly empty.
func (a Address) Complement() string { return a.complement }

// IsEqual reports whether two addresses have identical fields.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// Validate returns a validation error for the zero value.
func (a Address) Validate() error {
	if a.street == "" || a.city == "" {
		return errs.NewValueIsRequiredError("Address must be created via NewAddress")
	}
	return nil
}
