package order_test

import (
	"testing"
	"time"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newItem(t *testing.T, name, price string) order.Item {
	t.Helper()
	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), name, money)
	require.NoError(t, err)
	return item
}

type parties struct {
	customer kernel.UUID
	merchant kernel.UUID
	courier  kernel.UUID
}

func newParties() parties {
	return parties{customer: kernel.NewUUID(), merchant: kernel.NewUUID(), courier: kernel.NewUUID()}
}

func newPlacedOrder(t *testing.T, p parties) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		p.customer,
		p.merchant,
		[]order.Item{newItem(t, "Dumplings", "10.50"), newItem(t, "Noodles", "15.00")},
		"221B Baker Street",
		placedAt.Add(time.Hour),
		placedAt,
	)
	require.NoError(t, err)
	return o
}

func assertCourierInvariant(t *testing.T, o *order.Order) {
	t.Helper()
	assert.Equal(t, o.Status().HasCourier(), o.Courier() != nil, "status %s", o.Status())
}

func TestNewOrder(t *testing.T) {
	t.Run("computes exact total and starts pending confirmation", func(t *testing.T) {
		p := newParties()
		o := newPlacedOrder(t, p)

		require.NoError(t, o.Validate())
		assert.Equal(t, "25.50", o.Total().String())
		assert.Equal(t, order.PendingConfirmation, o.Status())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.Review())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, placedAt, o.OrderTime())
		assert.Equal(t, int64(1), o.Version())

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.Unknown, events[0].From)
		assert.Equal(t, order.PendingConfirmation, events[0].To)
		assert.True(t, p.customer.IsEqual(events[0].ActorID))
	})

	t.Run("rejects empty items", func(t *testing.T) {
		p := newParties()
		_, err := order.NewOrder(kernel.NewUUID(), p.customer, p.merchant, nil, "x", placedAt, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing parties", func(t *testing.T) {
		items := []order.Item{newItem(t, "Tea", "2.00")}
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, items, "x", placedAt, placedAt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "merchant")
	})

	t.Run("items are a snapshot", func(t *testing.T) {
		o := newPlacedOrder(t, newParties())
		items := o.Items()
		items[0] = newItem(t, "Changed", "99.00")

		assert.Equal(t, "Dumplings", o.Items()[0].Name())
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Accept(t *testing.T) {
	p := newParties()

	t.Run("owner accepts", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("other merchant is forbidden", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.ErrorIs(t, o.Accept(kernel.NewUUID(), placedAt), errs.ErrForbidden)
		assert.Equal(t, order.PendingConfirmation, o.Status())
	})

	t.Run("second accept is an invalid state", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		require.ErrorIs(t, o.Accept(p.merchant, placedAt), errs.ErrInvalidState)
	})
}

func TestOrder_RequestDelivery(t *testing.T) {
	p := newParties()

	t.Run("without courier opens the order to claims", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))

		require.NoError(t, o.RequestDelivery(p.merchant, nil, placedAt))
		assert.Equal(t, order.RequestingDelivery, o.Status())
		assertCourierInvariant(t, o)
	})

	t.Run("with courier assigns directly", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))

		require.NoError(t, o.RequestDelivery(p.merchant, &p.courier, placedAt))
		assert.Equal(t, order.Delivering, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, p.courier.IsEqual(*o.Courier()))
		assertCourierInvariant(t, o)
	})

	t.Run("before accept is an invalid state", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.ErrorIs(t, o.RequestDelivery(p.merchant, nil, placedAt), errs.ErrInvalidState)
		require.ErrorIs(t, o.RequestDelivery(p.merchant, &p.courier, placedAt), errs.ErrInvalidState)
		assert.Nil(t, o.Courier())
	})

	t.Run("other merchant is forbidden", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		require.ErrorIs(t, o.RequestDelivery(kernel.NewUUID(), nil, placedAt), errs.ErrForbidden)
	})
}

func TestOrder_Claim(t *testing.T) {
	p := newParties()
	requested := func(t *testing.T) *order.Order {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		require.NoError(t, o.RequestDelivery(p.merchant, nil, placedAt))
		return o
	}

	t.Run("first claim wins", func(t *testing.T) {
		o := requested(t)
		require.NoError(t, o.Claim(p.courier, placedAt))
		assert.Equal(t, order.Delivering, o.Status())
		assert.True(t, p.courier.IsEqual(*o.Courier()))
	})

	t.Run("second claim conflicts and keeps the first courier", func(t *testing.T) {
		o := requested(t)
		require.NoError(t, o.Claim(p.courier, placedAt))

		err := o.Claim(kernel.NewUUID(), placedAt)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, p.courier.IsEqual(*o.Courier()))
	})

	t.Run("not yet requested is an invalid state", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		require.ErrorIs(t, o.Claim(p.courier, placedAt), errs.ErrInvalidState)
	})

	t.Run("finished orders are an invalid state, not a conflict", func(t *testing.T) {
		delivered := requested(t)
		require.NoError(t, delivered.Claim(p.courier, placedAt))
		require.NoError(t, delivered.ConfirmDelivery(p.courier, placedAt))

		err := delivered.Claim(kernel.NewUUID(), placedAt)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.NotErrorIs(t, err, errs.ErrConflict)

		require.NoError(t, delivered.LeaveReview(p.customer, 5, "", placedAt))
		err = delivered.Claim(kernel.NewUUID(), placedAt)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Reviewed, delivered.Status())
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	p := newParties()
	delivering := func(t *testing.T) *order.Order {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		require.NoError(t, o.RequestDelivery(p.merchant, &p.courier, placedAt))
		return o
	}

	t.Run("assigned courier confirms", func(t *testing.T) {
		o := delivering(t)
		require.NoError(t, o.ConfirmDelivery(p.courier, placedAt))
		assert.Equal(t, order.Delivered, o.Status())
		assertCourierInvariant(t, o)
	})

	t.Run("other courier is forbidden", func(t *testing.T) {
		o := delivering(t)
		require.ErrorIs(t, o.ConfirmDelivery(kernel.NewUUID(), placedAt), errs.ErrForbidden)
		assert.Equal(t, order.Delivering, o.Status())
	})

	t.Run("state is checked before ownership", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.ErrorIs(t, o.ConfirmDelivery(kernel.NewUUID(), placedAt), errs.ErrInvalidState)
	})
}

func TestOrder_LeaveReview(t *testing.T) {
	p := newParties()
	delivered := func(t *testing.T) *order.Order {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		require.NoError(t, o.RequestDelivery(p.merchant, &p.courier, placedAt))
		require.NoError(t, o.ConfirmDelivery(p.courier, placedAt))
		return o
	}

	t.Run("review before delivery is rejected", func(t *testing.T) {
		o := newPlacedOrder(t, p)
		require.NoError(t, o.Accept(p.merchant, placedAt))
		require.ErrorIs(t, o.LeaveReview(p.customer, 5, "x", placedAt), errs.ErrInvalidState)
		assert.Nil(t, o.Review())
	})

	t.Run("upsert keeps a single review", func(t *testing.T) {
		o := delivered(t)

		require.NoError(t, o.LeaveReview(p.customer, 5, "great", placedAt))
		require.NoError(t, o.LeaveReview(p.customer, 3, "ok", placedAt.Add(time.Minute)))

		assert.Equal(t, order.Reviewed, o.Status())
		require.NotNil(t, o.Review())
		assert.Equal(t, 3, o.Review().Rating())
		assert.Equal(t, "ok", o.Review().Comment())
		assert.Equal(t, placedAt.Add(time.Minute), o.Review().ReviewedAt())
	})

	t.Run("re-review raises no second transition", func(t *testing.T) {
		o := delivered(t)
		o.ClearDomainEvents()

		require.NoError(t, o.LeaveReview(p.customer, 4, "", placedAt))
		require.NoError(t, o.LeaveReview(p.customer, 2, "", placedAt))

		assert.Len(t, o.DomainEvents(), 1)
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		o := delivered(t)
		require.ErrorIs(t, o.LeaveReview(kernel.NewUUID(), 5, "", placedAt), errs.ErrForbidden)
	})
}

func TestOrder_FullLifecycleEvents(t *testing.T) {
	p := newParties()
	o := newPlacedOrder(t, p)

	require.NoError(t, o.Accept(p.merchant, placedAt))
	require.NoError(t, o.RequestDelivery(p.merchant, nil, placedAt))
	require.NoError(t, o.Claim(p.courier, placedAt))
	require.NoError(t, o.ConfirmDelivery(p.courier, placedAt))
	require.NoError(t, o.LeaveReview(p.customer, 5, "fast", placedAt))

	var to []order.Status
	for _, e := range o.DomainEvents() {
		to = append(to, e.To)
		assert.True(t, o.ID().IsEqual(e.OrderID))
	}
	assert.Equal(t, []order.Status{
		order.PendingConfirmation,
		order.Preparing,
		order.RequestingDelivery,
		order.Delivering,
		order.Delivered,
		order.Reviewed,
	}, to)

	o.ClearDomainEvents()
	assert.Empty(t, o.DomainEvents())
}

func TestRestoreOrder(t *testing.T) {
	p := newParties()
	items := []order.Item{newItem(t, "Soup", "4.25"), newItem(t, "Bread", "1.75")}
	total, err := kernel.MoneyFromString("6.00")
	require.NoError(t, err)

	base := func() order.Snapshot {
		return order.Snapshot{
			ID:               kernel.NewUUID(),
			CustomerID:       p.customer,
			MerchantID:       p.merchant,
			Items:            items,
			Total:            total,
			DeliveryLocation: "Pier 7",
			OrderTime:        placedAt,
			DeliveryTime:     placedAt,
			Status:           order.Preparing,
			Version:          4,
		}
	}

	t.Run("valid snapshot", func(t *testing.T) {
		o, err := order.RestoreOrder(base())
		require.NoError(t, err)
		assert.Equal(t, int64(4), o.Version())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("legacy pending is readable", func(t *testing.T) {
		s := base()
		s.Status = order.Pending
		_, err := order.RestoreOrder(s)
		require.NoError(t, err)
	})

	testCases := []struct {
		name   string
		mutate func(*order.Snapshot)
	}{
		{name: "total mismatch", mutate: func(s *order.Snapshot) { s.Total = kernel.ZeroMoney() }},
		{name: "courier without delivery", mutate: func(s *order.Snapshot) { s.CourierID = &p.courier }},
		{name: "delivering without courier", mutate: func(s *order.Snapshot) { s.Status = order.Delivering }},
		{name: "review before reviewed", mutate: func(s *order.Snapshot) {
			r := order.RestoreReview(5, "", placedAt)
			s.Review = &r
		}},
		{name: "reviewed without review", mutate: func(s *order.Snapshot) {
			s.Status = order.Reviewed
			s.CourierID = &p.courier
		}},
		{name: "unknown status", mutate: func(s *order.Snapshot) { s.Status = order.Unknown }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := base()
			tc.mutate(&s)
			_, err := order.RestoreOrder(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
