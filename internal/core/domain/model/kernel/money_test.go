package kernel_test

import (
	"testing"

	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "two decimals", input: "10.50", expected: "10.50"},
		{name: "integer", input: "15", expected: "15.00"},
		{name: "zero", input: "0", expected: "0.00"},
		{name: "negative", input: "-1.00", wantErr: true},
		{name: "too precise", input: "1.005", wantErr: true},
		{name: "not a number", input: "ten", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := kernel.MoneyFromString(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			require.NoError(t, m.Validate())
			assert.Equal(t, tc.expected, m.String())
		})
	}
}

func TestMoney_AddIsExact(t *testing.T) {
	total := kernel.ZeroMoney()
	for range 10 {
		tenCents, err := kernel.NewMoney(decimal.RequireFromString("0.10"))
		require.NoError(t, err)
		total = total.Add(tenCents)
	}

	one, err := kernel.MoneyFromString("1.00")
	require.NoError(t, err)
	assert.True(t, total.IsEqual(one))
	assert.Equal(t, "1.00", total.String())
}

func TestMoney_ZeroValueIsNotConstructed(t *testing.T) {
	var m kernel.Money
	assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
	assert.False(t, m.IsPositive())
}
