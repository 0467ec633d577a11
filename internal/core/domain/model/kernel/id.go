package kernel

import (
	"fmt"
	"strconv"

	"jibekjoly/internal/pkg/errs"
)

// ID is the system-internal numeric identifier of a persisted record
// (orders, statuses, profiles, cities, package sizes, chat sessions).
// IDs are assigned by storage and are always positive; the zero value means
// "not assigned yet".
type ID int64

// NewID validates a raw identifier coming from a request or from storage.
func NewID(paramName string, raw int64) (ID, error) {
	id := ID(raw)
	if err := id.validate(paramName); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier, reporting failures against paramName.
func ParseID(paramName, raw string) (ID, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not a number", raw))
	}
	return NewID(paramName, v)
}

// IsZero reports whether the identifier has not been assigned.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw value for persistence.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) validate(paramName string) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not a positive identifier", id))
	}
	return nil
}
