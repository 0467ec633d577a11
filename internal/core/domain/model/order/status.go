package order

import (
	"fmt"

	"jibekjoly/internal/pkg/errs"
)

// Status is the lifecycle state an order status row maps to. Display names live
// in StatusDefinition; control flow only ever looks at Status.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Processing
	InTransit
	Delivered
	Cancelled
)

var statusCodes = map[Status]string{
	Processing: "processing",
	InTransit:  "in_transit",
	Delivered:  "delivered",
	Cancelled:  "cancelled",
}

// ParseStatus maps a stored code back to a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q is not a lifecycle code", code))
}

// Code returns the stable storage code, or "unknown".
func (s Status) Code() string {
	if c, ok := statusCodes[s]; ok {
		return c
	}
	return "unknown"
}

func (s Status) String() string {
	return s.Code()
}

func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsUnique reports whether at most one status row may carry this state.
// Cancelled is the only state with several display variants.
func (s Status) IsUnique() bool {
	return s != Cancelled
}
