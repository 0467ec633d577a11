package kernel

import (
	"strings"
	"unicode/utf8"

	"jibekjoly/internal/pkg/errs"
)

// RequiredText trims s and checks it is non-empty and at most maxLen characters.
func RequiredText(paramName, s string, maxLen int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return s, checkLength(paramName, s, maxLen)
}

// OptionalText trims s and checks its length when present. An empty result is allowed.
func OptionalText(paramName, s string, maxLen int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	return s, checkLength(paramName, s, maxLen)
}

func checkLength(paramName, s string, maxLen int) error {
	if maxLen <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(s); n > maxLen {
		return errs.NewValueIsOutOfRangeError(paramName, n, 1, maxLen)
	}
	return nil
}
