package kernel

import (
	"errors"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// TimeWindow is the scheduled period of a service order: the interval within
// which the crew is expected to be on site. Start must be strictly before End.
//
// TimeWindow is a value object; construct through NewTimeWindow.
type TimeWindow struct {
	start time.Time
	end   time.Time

	isConstructed bool
}

// NewTimeWindow creates a validated time window.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("end")
	}
	if !start.Before(end) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("scheduleWindow",
			errors.New("start must be before end"))
	}

	return TimeWindow{start: start, end: end, isConstructed: true}, nil
}

// Start returns the beginning of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the end of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Date returns the calendar day of the window start, truncated in the
// window's own location. Used for per-day crew availability reporting.
func (w TimeWindow) Date() time.Time {
	y, m, d := w.start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, w.start.Location())
}

// IsEqual reports whether two windows cover the same instant range.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// Validate returns a validation error for a zero-value window.
func (w TimeWindow) Validate() error {
	if !w.isConstructed {
		return errs.NewValueIsRequiredError("TimeWindow must be created via NewTimeWindow")
	}
	return nil
}
