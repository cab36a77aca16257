package http

import (
	"errors"
	"net/http"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// Machine-readable error kinds. Automated clients retry the whole operation
// on ConflictError and treat every other kind as final.
const (
	KindValidationError = "ValidationError"
	KindNotFoundError   = "NotFoundError"
	KindConflictError   = "ConflictError"
	KindStateError      = "StateError"
	KindInternalError   = "InternalError"
)

// ErrorResponse is the JSON error body returned for every failed request.
type ErrorResponse struct {
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}

// classifyError maps the business error taxonomy to an HTTP status and a
// stable error kind. Illegal state transitions are final, so they share the
// 400 family with validation failures rather than the retryable 409.
// Anything outside the taxonomy is treated as an infrastructure failure.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, KindValidationError
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusBadRequest, KindStateError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, KindNotFoundError
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, KindConflictError
	default:
		return http.StatusInternalServerError, KindInternalError
	}
}

func errorBody(err error) (int, ErrorResponse) {
	status, kind := classifyError(err)
	message := err.Error()
	if kind == KindInternalError {
		// Persistence details stay out of responses.
		message = "internal error"
	}
	return status, ErrorResponse{ErrorKind: kind, Message: message}
}
