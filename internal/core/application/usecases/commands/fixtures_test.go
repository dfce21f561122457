package commands_test

import (
	"context"
	"testing"
	"time"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type parties struct {
	customer kernel.UUID
	merchant kernel.UUID
	courier  kernel.UUID
}

func newParties() parties {
	return parties{
		customer: kernel.NewUUID(),
		merchant: kernel.NewUUID(),
		courier:  kernel.NewUUID(),
	}
}

// orderIn walks a fresh order through the lifecycle up to status and drops
// the events raised on the way.
func orderIn(t *testing.T, p parties, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("12.50")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Katsu curry", price)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), p.customer, p.merchant,
		[]order.Item{item}, "4 Quay Rd", placedAt.Add(time.Hour), placedAt)
	require.NoError(t, err)

	steps := []func() error{
		func() error { return o.Accept(p.merchant, placedAt) },
		func() error { return o.RequestDelivery(p.merchant, nil, placedAt) },
		func() error { return o.Claim(p.courier, placedAt) },
		func() error { return o.ConfirmDelivery(p.courier, placedAt) },
		func() error { return o.LeaveReview(p.customer, 4, "ok", placedAt) },
	}
	for _, step := range steps {
		if o.Status() == status {
			break
		}
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())

	o.ClearDomainEvents()
	return o
}

func expectTx(ctx context.Context, uow *MockUoW) {
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
}
