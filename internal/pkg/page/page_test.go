package page_test

import (
	"strconv"
	"testing"

	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	testCases := []struct {
		name     string
		number   int
		size     int
		wantSize int
		wantErr  bool
	}{
		{name: "first page", number: 0, size: 10, wantSize: 10},
		{name: "later page", number: 3, size: 1, wantSize: 1},
		{name: "max size", number: 0, size: page.MaxSize, wantSize: page.MaxSize},
		{name: "oversized is clamped", number: 2, size: 1000, wantSize: page.MaxSize},
		{name: "negative page", number: -1, size: 10, wantErr: true},
		{name: "zero size", number: 0, size: 0, wantErr: true},
		{name: "negative size", number: 0, size: -5, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := page.NewRequest(tc.number, tc.size)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			require.NoError(t, req.Validate())
			assert.Equal(t, tc.wantSize, req.Size())
			assert.Equal(t, tc.number*tc.wantSize, req.Offset())
		})
	}
}

func TestRequest_ZeroValueIsNotConstructed(t *testing.T) {
	var req page.Request
	require.ErrorIs(t, req.Validate(), page.ErrRequestIsNotConstructed)
}

func TestNew(t *testing.T) {
	req, err := page.NewRequest(1, 2)
	require.NoError(t, err)

	p := page.New([]int{3, 4}, req, 5)

	assert.Equal(t, []int{3, 4}, p.Content)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 2, p.Size)
	assert.Equal(t, int64(5), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.Last)
}

func TestNew_LastAndEmpty(t *testing.T) {
	t.Run("last page", func(t *testing.T) {
		req, err := page.NewRequest(2, 2)
		require.NoError(t, err)

		p := page.New([]int{5}, req, 5)
		assert.True(t, p.Last)
	})

	t.Run("no rows", func(t *testing.T) {
		p := page.New[int](nil, page.DefaultRequest(), 0)

		assert.NotNil(t, p.Content)
		assert.Empty(t, p.Content)
		assert.Equal(t, 0, p.TotalPages)
		assert.True(t, p.Last)
	})
}

func TestMap(t *testing.T) {
	req, err := page.NewRequest(0, 3)
	require.NoError(t, err)

	p := page.Map(page.New([]int{1, 2}, req, 2), strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, p.Content)
	assert.Equal(t, int64(2), p.TotalElements)
	assert.True(t, p.Last)
}
