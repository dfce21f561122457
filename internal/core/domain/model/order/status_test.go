package order_test

import (
	"fmt"
	"testing"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(8), order.Status(100)} {
		t.Run(fmt.Sprintf("reject %d", int(status)), func(t *testing.T) {
			err := status.Validate()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not a valid status")
		})
	}
}

func TestStatus_StringAndParse(t *testing.T) {
	expected := []string{
		"PENDING",
		"PENDING_CONFIRMATION",
		"PREPARING",
		"REQUESTING_DELIVERY",
		"DELIVERING",
		"DELIVERED",
		"REVIEWED",
	}
	for i, status := range order.AllStatuses() {
		assert.Equal(t, expected[i], status.String())

		parsed, err := order.ParseStatus(expected[i])
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	assert.Equal(t, "UNKNOWN", order.Status(42).String())
	_, err := order.ParseStatus("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	testCases := []struct {
		name    string
		fn      transition
		allowed map[order.Status]order.Status
	}{
		{
			name:    "accept",
			fn:      order.Status.Accept,
			allowed: map[order.Status]order.Status{order.PendingConfirmation: order.Preparing},
		},
		{
			name:    "request delivery",
			fn:      order.Status.RequestDelivery,
			allowed: map[order.Status]order.Status{order.Preparing: order.RequestingDelivery},
		},
		{
			name:    "dispatch",
			fn:      order.Status.Dispatch,
			allowed: map[order.Status]order.Status{order.Preparing: order.Delivering},
		},
		{
			name:    "claim",
			fn:      order.Status.Claim,
			allowed: map[order.Status]order.Status{order.RequestingDelivery: order.Delivering},
		},
		{
			name:    "deliver",
			fn:      order.Status.Deliver,
			allowed: map[order.Status]order.Status{order.Delivering: order.Delivered},
		},
		{
			name: "review",
			fn:   order.Status.Review,
			allowed: map[order.Status]order.Status{
				order.Delivered: order.Reviewed,
				order.Reviewed:  order.Reviewed,
			},
		},
	}

	for _, tc := range testCases {
		for _, from := range append(order.AllStatuses(), order.Unknown) {
			t.Run(tc.name+" from "+from.String(), func(t *testing.T) {
				next, err := tc.fn(from)
				if want, ok := tc.allowed[from]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidState)
				assert.Equal(t, order.Unknown, next)
			})
		}
	}
}

func TestStatus_LegacyPendingIsTerminal(t *testing.T) {
	_, err := order.Pending.Accept()
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.NoError(t, order.Pending.ValidateCanHaveCourier(false))
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			if status.HasCourier() {
				require.NoError(t, status.ValidateCanHaveCourier(true))
				require.ErrorIs(t, status.ValidateCanHaveCourier(false), errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, status.ValidateCanHaveCourier(false))
			require.ErrorIs(t, status.ValidateCanHaveCourier(true), errs.ErrValueIsInvalid)
		})
	}
}
