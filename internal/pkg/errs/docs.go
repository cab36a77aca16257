// Package errs provides the standardized error types used across the
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping.
//
// The taxonomy mirrors the business-level error kinds of the service order
// core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures
//   - ObjectNotFoundError: a referenced object does not exist
//   - ConflictError: a contended resource rejected the request
//     (insufficient stock, vehicle unavailable, duplicate crew assignment,
//     optimistic-concurrency version mismatch)
//   - InvalidStateError: an illegal lifecycle transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter relies on the sentinels to map errors to stable status
// codes, letting automated callers distinguish retryable conflicts from
// non-retryable validation, not-found, and state errors.
package errs
