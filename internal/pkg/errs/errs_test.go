package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"jibekjoly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(123))

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, int64(123), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "ABC", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order ABC (cause: database connection failed)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status_id")

		assert.Equal(t, "status_id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status_id", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("status 42 does not exist")
		err := errs.NewValueIsInvalidErrorWithCause("status_id", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status_id (cause: status 42 does not exist)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("recipient_phone", 25, 1, 20)

		assert.Equal(t, "recipient_phone", err.ParamName)
		assert.Equal(t, 25, err.Value)
		assert.Equal(t,
			"value is out of range: recipient_phone is 25, min value is 1, max value is 20",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("comment", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("pickup_address")

	assert.Equal(t, "pickup_address", err.ParamName)
	assert.Equal(t, "value is required: pickup_address", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("pickup_address", errors.New("blank"))
	assert.Equal(t, "value is required: pickup_address (cause: blank)", withCause.Error())
}

func TestAccessDeniedError(t *testing.T) {
	err := errs.NewAccessDeniedError("update order", "cancellation is only allowed while processing")

	assert.Equal(t, "access denied: update order: cancellation is only allowed while processing", err.Error())
	require.ErrorIs(t, err, errs.ErrAccessDenied)

	bare := errs.NewAccessDeniedError("create order", "")
	assert.Equal(t, "access denied: create order", bare.Error())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", int64(7), "order is no longer claimable")

	assert.Equal(t, "conflict: order 7: order is no longer claimable", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestMisconfigurationError(t *testing.T) {
	err := errs.NewMisconfigurationError("order status processing")

	assert.Equal(t, "misconfigured: order status processing", err.Error())
	require.ErrorIs(t, err, errs.ErrMisconfigured)
	require.NotErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParamName(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		param string
		ok    bool
	}{
		{"required", errs.NewValueIsRequiredError("recipient_name"), "recipient_name", true},
		{"invalid", errs.NewValueIsInvalidError("status_id"), "status_id", true},
		{"out of range", errs.NewValueIsOutOfRangeError("price", -1, 0, 99999999), "price", true},
		{"not found", errs.NewObjectNotFoundError("order", 1), "order", true},
		{"wrapped", fmt.Errorf("update: %w", errs.NewValueIsInvalidError("origin_city_id")), "origin_city_id", true},
		{"access denied", errs.NewAccessDeniedError("x", "y"), "", false},
		{"plain", errors.New("boom"), "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			param, ok := errs.ParamName(tc.err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.param, param)
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrObjectNotFound,
		errs.ErrAccessDenied,
		errs.ErrConflict,
		errs.ErrMisconfigured,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
