package serviceorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// OrderNumber is the human-readable identifier of a service order, formed as
// "<year>-<zero-padded sequence>" (e.g. "2026-00042"). The sequence is
// monotonically increasing and scoped per year; assignment is owned by the
// order-number sequence port, not by this value object.
type OrderNumber struct {
	year     int
	sequence int
}

// NewOrderNumber creates an order number from its year and per-year sequence.
func NewOrderNumber(year, sequence int) (OrderNumber, error) {
	if year < 2000 || year > 9999 {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("year", year, 2000, 9999)
	}
	if sequence < 1 {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, 99999)
	}

	return OrderNumber{year: year, sequence: sequence}, nil
}

// OrderNumberFromString parses a persisted order number.
func OrderNumberFromString(s string) (OrderNumber, error) {
	yearPart, seqPart, ok := strings.Cut(s, "-")
	if !ok {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match <year>-<sequence>", s))
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}

	sequence, err := strconv.Atoi(seqPart)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}

	return NewOrderNumber(year, sequence)
}

// Year returns the year scope of the number.
func (n OrderNumber) Year() int {
	return n.year
}

// Sequence returns the per-year sequence value.
func (n OrderNumber) Sequence() int {
	return n.sequence
}

// String formats the number as "<year>-<sequence %05d>".
func (n OrderNumber) String() string {
	return fmt.Sprintf("%d-%05d", n.year, n.sequence)
}

// IsEqual reports whether two order numbers are the same.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.year == other.year && n.sequence == other.sequence
}

// Validate returns a validation error for the zero value.
func (n OrderNumber) Validate() error {
	if n.year == 0 || n.sequence == 0 {
		return errs.NewValueIsRequiredError("OrderNumber must be created via NewOrderNumber")
	}
	return nil
}
