package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("row locked")

	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", "o-1"), "object not found: o-1"},
		{
			"not found with cause",
			errs.NewObjectNotFoundErrorWithCause("orderId", "o-1", cause),
			"object not found: param is: orderId, ID is: o-1 (cause: row locked)",
		},
		{"not found with int id", errs.NewObjectNotFoundError("page", 7), "object not found: %!s(int=7)"},
		{"invalid", errs.NewValueIsInvalidError("price"), "value is invalid: price"},
		{"invalid with cause", errs.NewValueIsInvalidErrorWithCause("price", cause), "value is invalid: price (cause: row locked)"},
		{
			"out of range",
			errs.NewValueIsOutOfRangeError("size", 500, 1, 100),
			"value is invalid: 500 is size, min value is 1, max value is 100",
		},
		{
			"out of range with cause",
			errs.NewValueIsOutOfRangeErrorWithCause("rating", 6, 1, 5, cause),
			"value is invalid: 6 is rating, min value is 1, max value is 5 (cause: row locked)",
		},
		{"required", errs.NewValueIsRequiredError("dishIds"), "value is required: dishIds"},
		{"required with cause", errs.NewValueIsRequiredErrorWithCause("customerId", cause), "value is required: customerId (cause: row locked)"},
		{"version", errs.NewVersionIsInvalidError("order"), "version is invalid: order"},
		{"version with cause", errs.NewVersionIsInvalidErrorWithCause("order", cause), "version is invalid: order (cause: row locked)"},
		{"forbidden", errs.NewForbiddenError("accept order", "merchant-1"), "forbidden: merchant-1 may not accept order"},
		{
			"forbidden with cause",
			errs.NewForbiddenErrorWithCause("deliver order", "courier-2", errors.New("not assigned")),
			"forbidden: courier-2 may not deliver order (cause: not assigned)",
		},
		{"invalid state", errs.NewInvalidStateError("order", "PREPARING", "accept"), "invalid state: order in PREPARING cannot accept"},
		{"conflict", errs.NewConflictError("order", "42"), "conflict: order 42"},
		{
			"conflict over version",
			errs.NewConflictErrorWithCause("order", "42", errs.NewVersionIsInvalidError("order")),
			"conflict: order 42 (cause: version is invalid: order)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestOutOfRangeValueIsSanitized(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("comment", "cold\nsoup", 0, 10)

	assert.Contains(t, err.Error(), "cold soup")
	assert.NotContains(t, err.Error(), "\n")
}

func TestFieldsAreKept(t *testing.T) {
	cause := errors.New("boom")

	notFound := errs.NewObjectNotFoundErrorWithCause("dishId", "d-9", cause)
	assert.Equal(t, "dishId", notFound.ParamName)
	assert.Equal(t, "d-9", notFound.ID)
	assert.Equal(t, cause, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("size", 0, 1, 100)
	assert.Equal(t, 0, outOfRange.Value)
	assert.Equal(t, 1, outOfRange.Min)
	assert.Equal(t, 100, outOfRange.Max)
	require.NoError(t, outOfRange.Cause)

	version := errs.NewVersionIsInvalidError("order")
	assert.Equal(t, "order", version.ParamName)
	require.NoError(t, version.Cause)
}

func TestSentinels(t *testing.T) {
	testCases := []struct {
		err      error
		sentinel error
		message  string
	}{
		{errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound, "object not found"},
		{errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid, "value is invalid"},
		{errs.NewValueIsOutOfRangeError("size", 0, 1, 100), errs.ErrValueIsOutOfRange, "value is out of range"},
		{errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired, "value is required"},
		{errs.NewVersionIsInvalidError("order"), errs.ErrVersionIsInvalid, "version is invalid"},
		{errs.NewForbiddenError("review order", "c-1"), errs.ErrForbidden, "forbidden"},
		{errs.NewInvalidStateError("order", "DELIVERED", "claim"), errs.ErrInvalidState, "invalid state"},
		{errs.NewConflictError("username", "ana"), errs.ErrConflict, "conflict"},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.sentinel.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
			require.ErrorIs(t, fmt.Errorf("handle: %w", tc.err), tc.sentinel)
		})
	}
}

func TestKindsStayDistinct(t *testing.T) {
	invalidState := errs.NewInvalidStateError("order", "PREPARING", "accept")
	assert.NotErrorIs(t, invalidState, errs.ErrConflict)

	conflict := errs.NewConflictErrorWithCause("order", "42", errs.NewVersionIsInvalidError("order"))
	assert.NotErrorIs(t, conflict, errs.ErrVersionIsInvalid)

	joined := errors.Join(errs.NewValueIsRequiredError("merchantId"), errs.NewValueIsInvalidError("dishIds"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
