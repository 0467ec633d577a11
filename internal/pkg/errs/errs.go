package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to exactly one of them, so callers
// classify failures with errors.Is and read details with errors.As.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrConflict          = errors.New("conflict")
	ErrMisconfigured     = errors.New("misconfigured")
)

// ValueIsRequiredError reports a missing mandatory value.
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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that is present but malformed, or a reference
// to an entity that does not exist.
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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
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
	msg := fmt.Sprintf("%s: %s is %v, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), e.Min, e.Max)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
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
	return withCause(fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AccessDeniedError reports that the actor does not satisfy any guard for the
// requested action. It never carries a state change.
type AccessDeniedError struct {
	Action string
	Reason string
}

func NewAccessDeniedError(action, reason string) *AccessDeniedError {
	return &AccessDeniedError{Action: action, Reason: reason}
}

func (e *AccessDeniedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrAccessDenied, e.Action)
	}
	return fmt.Sprintf("%s: %s: %s", ErrAccessDenied, e.Action, e.Reason)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// ConflictError reports a write that lost a race against a concurrent writer.
type ConflictError struct {
	Object string
	ID     any
	Reason string
}

func NewConflictError(object string, id any, reason string) *ConflictError {
	return &ConflictError{Object: object, ID: id, Reason: reason}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %v: %s", ErrConflict, e.Object, e.ID, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// MisconfigurationError reports reference data the service depends on that is
// missing on the server side. No caller action fixes it.
type MisconfigurationError struct {
	Setting string
	Cause   error
}

func NewMisconfigurationError(setting string) *MisconfigurationError {
	return &MisconfigurationError{Setting: setting}
}

func NewMisconfigurationErrorWithCause(setting string, cause error) *MisconfigurationError {
	return &MisconfigurationError{Setting: setting, Cause: cause}
}

func (e *MisconfigurationError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrMisconfigured, e.Setting), e.Cause)
}

func (e *MisconfigurationError) Unwrap() error {
	return ErrMisconfigured
}

// ParamName extracts the offending parameter from a validation or lookup error.
// The second result is false when err carries no parameter.
func ParamName(err error) (string, bool) {
	var (
		required   *ValueIsRequiredError
		invalid    *ValueIsInvalidError
		outOfRange *ValueIsOutOfRangeError
		notFound   *ObjectNotFoundError
	)
	switch {
	case errors.As(err, &required):
		return required.ParamName, true
	case errors.As(err, &invalid):
		return invalid.ParamName, true
	case errors.As(err, &outOfRange):
		return outOfRange.ParamName, true
	case errors.As(err, &notFound):
		return notFound.ParamName, true
	}
	return "", false
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprint(v), "\n", " ")
}
