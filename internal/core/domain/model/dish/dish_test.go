package dish_test

import (
	"testing"

	"takeout/internal/core/domain/model/dish"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewDish(t *testing.T) {
	merchant := kernel.NewUUID()

	d, err := dish.NewDish(kernel.NewUUID(), merchant, "Bao", money(t, "4.20"), "steamed", "")
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.True(t, d.OwnedBy(merchant))
	assert.False(t, d.OwnedBy(kernel.NewUUID()))

	_, err = dish.NewDish(kernel.NewUUID(), merchant, "", money(t, "4.20"), "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = dish.NewDish(kernel.NewUUID(), merchant, "Free bao", kernel.ZeroMoney(), "", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = dish.NewDish(kernel.NewUUID(), kernel.UUID{}, "Bao", money(t, "1.00"), "", "")
	require.Error(t, err)
}

func TestDish_Apply(t *testing.T) {
	d, err := dish.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Bao", money(t, "4.20"), "steamed", "a.png")
	require.NoError(t, err)

	newPrice := money(t, "5.00")
	desc := "pan fried"
	require.NoError(t, d.Apply(dish.Patch{Price: &newPrice, Description: &desc}))

	assert.Equal(t, "Bao", d.Name())
	assert.Equal(t, "5.00", d.Price().String())
	assert.Equal(t, "pan fried", d.Description())
	assert.Equal(t, "a.png", d.ImageURL())

	empty := ""
	require.ErrorIs(t, d.Apply(dish.Patch{Name: &empty}), errs.ErrValueIsRequired)
	assert.Equal(t, "Bao", d.Name())
}
