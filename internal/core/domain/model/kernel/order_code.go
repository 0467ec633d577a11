package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"jibekjoly/internal/pkg/errs"
)

const (
	// OrderCodeLength is the fixed length of the human-facing order code.
	OrderCodeLength = 12

	orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrOrderCodeIsNotConstructed is returned when validating a zero-value OrderCode.
var ErrOrderCodeIsNotConstructed = errs.NewValueIsRequiredError("unique_order_id")

// OrderCode is the human-facing unique identifier printed on a delivery order:
// exactly twelve characters from A-Z and 0-9. It is assigned once when the order
// is placed and never changes. Uniqueness is enforced by storage; on collision a
// new code is drawn.
type OrderCode struct {
	value string
}

// NewRandomOrderCode draws a fresh code.
func NewRandomOrderCode() OrderCode {
	var b strings.Builder
	b.Grow(OrderCodeLength)
	for range OrderCodeLength {
		b.WriteByte(orderCodeAlphabet[rand.IntN(len(orderCodeAlphabet))])
	}
	return OrderCode{value: b.String()}
}

// OrderCodeFromString restores a code read from storage or a request.
func OrderCodeFromString(s string) (OrderCode, error) {
	if len(s) != OrderCodeLength {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause(
			"unique_order_id",
			fmt.Errorf("length %d, expected %d", len(s), OrderCodeLength),
		)
	}
	for _, r := range s {
		if !strings.ContainsRune(orderCodeAlphabet, r) {
			return OrderCode{}, errs.NewValueIsInvalidErrorWithCause(
				"unique_order_id",
				fmt.Errorf("unexpected character %q", r),
			)
		}
	}
	return OrderCode{value: s}, nil
}

func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two codes.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate rejects the zero value.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return ErrOrderCodeIsNotConstructed
	}
	return nil
}
