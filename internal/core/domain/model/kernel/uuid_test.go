package kernel_test

import (
	"testing"

	"takeout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderIDText = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.False(t, id1.IsEqual(id2))
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`, id1.String())
}

func TestUUIDFromString(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: orderIDText},
		{name: "braces", input: "{" + orderIDText + "}"},
		{name: "urn", input: "urn:uuid:" + orderIDText},
		{name: "no hyphens", input: "550e8400e29b41d4a716446655440000"},
		{name: "garbage", input: "not-a-uuid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid UUID format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderIDText, id.String())
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trips through Bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(id))
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e})
		require.Error(t, err)
	})

	t.Run("rejects nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUIDFrom(t *testing.T) {
	id, err := kernel.UUIDFrom(uuid.MustParse(orderIDText))
	require.NoError(t, err)
	assert.Equal(t, orderIDText, id.String())

	_, err = kernel.UUIDFrom(uuid.Nil)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())

	parsedNil, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, parsedNil.Validate())
}

func TestUUID_BytesIsACopy(t *testing.T) {
	original := kernel.NewUUID()
	text := original.String()

	raw := original.Bytes()
	for i := range raw {
		raw[i] = 0xFF
	}

	assert.Equal(t, text, original.String())
}
