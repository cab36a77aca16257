package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the business-level error taxonomy. Every typed error in
// this package unwraps to exactly one sentinel so callers can classify with
// errors.Is without depending on concrete types:
//
//   - ErrValueIsRequired / ErrValueIsInvalid / ErrValueIsOutOfRange: validation
//     failures, no mutation occurred, not retryable.
//   - ErrObjectNotFound: a referenced contract, employee, material, vehicle or
//     order does not exist; not retryable.
//   - ErrConflict: a contended resource could not be reserved (insufficient
//     stock, vehicle unavailable, duplicate crew assignment, version mismatch);
//     the whole operation may be retried from scratch.
//   - ErrInvalidState: an illegal lifecycle transition; not retryable.
//
// Anything that does not unwrap to one of these is treated as a persistence or
// infrastructure failure by the HTTP layer.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidState      = errors.New("invalid state")
)

// sanitize strips newlines from values interpolated into error messages so a
// single log line stays a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError indicates a required input value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates an input value is malformed or violates a
// domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric input value is outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, strings.ReplaceAll(fmt.Sprintf("%v", e.Value), "\n", " "), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError indicates a contended resource could not be reserved: the
// resource exists but its current state rejects the request. The originating
// operation leaves no partial mutation behind and may be retried in full.
type ConflictError struct {
	Resource string
	ID       any
	Message  string
	Cause    error
}

func NewConflictError(resource string, id any, message string) *ConflictError {
	return &ConflictError{Resource: resource, ID: id, Message: message}
}

func NewConflictErrorWithCause(resource string, id any, message string, cause error) *ConflictError {
	return &ConflictError{Resource: resource, ID: id, Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s: resource is: %s, ID is: %s",
		ErrConflict, e.Message, e.Resource, sanitize(e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStateError indicates an illegal lifecycle transition was requested,
// including any transition out of a terminal state. With an empty Requested
// field it reports that the entity's current state rejects mutation at all,
// e.g. updating a terminal order.
type InvalidStateError struct {
	Entity    string
	Current   string
	Requested string
	Cause     error
}

func NewInvalidStateError(entity, current, requested string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Requested: requested}
}

func NewInvalidStateErrorWithCause(entity, current, requested string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Requested: requested, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.Entity, e.Current)
	if e.Requested != "" {
		msg = fmt.Sprintf("%s: %s cannot transition from %s to %s",
			ErrInvalidState, e.Entity, e.Current, e.Requested)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
