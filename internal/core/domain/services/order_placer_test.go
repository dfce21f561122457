package services_test

import (
	"testing"
	"time"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/domain/services"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	customer *account.Account
	merchant *account.Account
	rival    *account.Account
	d1, d2   *dish.Dish
	foreign  *dish.Dish
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mustAccount := func(name string, p account.Profile) *account.Account {
		a, err := account.NewAccount(kernel.NewUUID(), account.Contact{Username: name}, p)
		require.NoError(t, err)
		return a
	}
	mustDish := func(merchant *account.Account, name, price string) *dish.Dish {
		m, err := kernel.MoneyFromString(price)
		require.NoError(t, err)
		d, err := dish.NewDish(kernel.NewUUID(), merchant.ID(), name, m, "", "")
		require.NoError(t, err)
		return d
	}

	f := fixture{
		customer: mustAccount("ann", account.CustomerProfile{}),
		merchant: mustAccount("wok", account.MerchantProfile{MerchantName: "Wok"}),
		rival:    mustAccount("pan", account.MerchantProfile{MerchantName: "Pan"}),
	}
	f.d1 = mustDish(f.merchant, "D1", "10.50")
	f.d2 = mustDish(f.merchant, "D2", "15.00")
	f.foreign = mustDish(f.rival, "F", "3.00")
	return f
}

func (f fixture) request(ids ...kernel.UUID) services.PlaceOrderRequest {
	now := time.Date(2025, 1, 2, 18, 0, 0, 0, time.UTC)
	return services.PlaceOrderRequest{
		OrderID:          kernel.NewUUID(),
		Customer:         f.customer,
		Merchant:         f.merchant,
		DishIDs:          ids,
		Menu:             []*dish.Dish{f.d1, f.d2, f.foreign},
		DeliveryLocation: "Dock 3",
		DeliveryTime:     now.Add(45 * time.Minute),
		Now:              now,
	}
}

func TestOrderPlacer_Place(t *testing.T) {
	f := newFixture(t)
	placer := services.NewOrderPlacer()

	t.Run("sums resolved dishes exactly", func(t *testing.T) {
		o, err := placer.Place(f.request(f.d1.ID(), f.d2.ID()))

		require.NoError(t, err)
		assert.Equal(t, "25.50", o.Total().String())
		assert.Equal(t, order.PendingConfirmation, o.Status())
		assert.True(t, f.customer.ID().IsEqual(o.CustomerID()))
		assert.True(t, f.merchant.ID().IsEqual(o.MerchantID()))
	})

	t.Run("drops unknown and foreign dishes", func(t *testing.T) {
		o, err := placer.Place(f.request(f.d1.ID(), kernel.NewUUID(), f.foreign.ID()))

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "D1", o.Items()[0].Name())
		assert.Equal(t, "10.50", o.Total().String())
	})

	t.Run("repeated dish counts twice", func(t *testing.T) {
		o, err := placer.Place(f.request(f.d1.ID(), f.d1.ID()))

		require.NoError(t, err)
		assert.Equal(t, "21.00", o.Total().String())
	})

	t.Run("nothing resolves", func(t *testing.T) {
		_, err := placer.Place(f.request(kernel.NewUUID(), f.foreign.ID()))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("wrong roles are not found", func(t *testing.T) {
		req := f.request(f.d1.ID())
		req.Customer = f.merchant
		_, err := placer.Place(req)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		req = f.request(f.d1.ID())
		req.Merchant = f.customer
		_, err = placer.Place(req)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
