// Package errs provides standardized error types for the delivery backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors by how a caller should react to them:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: the request
//     is malformed or references an entity that does not exist; fix and resubmit
//   - ObjectNotFoundError: the addressed object does not exist
//   - AccessDeniedError: the actor does not satisfy any guard for the action
//   - ConflictError: a concurrent writer won; refresh and retry with fresh data
//   - MisconfigurationError: reference data the server depends on is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Adapters translate the sentinels into transport status codes in a single place.
package errs
