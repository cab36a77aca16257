package serviceorder

import (
	"fmt"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order. It implements a
// closed state machine with an explicit transition table so every transition
// is checked against the same adjacency data, never ad hoc comparisons.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status: resources are reserved and the job
	// is waiting for its schedule window.
	Scheduled

	// InProgress indicates the crew has started the job.
	InProgress

	// Completed indicates the job finished; reserved materials were
	// consumed and the vehicle was released. Terminal.
	Completed

	// Cancelled indicates the job was called off; reserved materials were
	// returned to stock and the vehicle was released. Terminal.
	Cancelled
)

// getStatusStrings returns the string representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Scheduled:  "Scheduled",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getTransitionTable returns the allowed next states per current state.
// Terminal states have no entries.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Scheduled:  {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// String returns the human-readable name of the status, "Unknown" for
// invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Status is one of the defined lifecycle states.
// Used when reconstructing orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving from
// the current status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the transition is legal, otherwise an
// InvalidStateError. Transitions out of terminal states and unrecognized
// targets both fail here.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, errs.NewInvalidStateErrorWithCause("service order", s.String(), next.String(), err)
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidStateError("service order", s.String(), next.String())
	}
	return next, nil
}

// StatusFromString parses a persisted or user-supplied status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}
