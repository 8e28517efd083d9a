package kernel_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const knownUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("creates a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
			id.String())
	})

	t.Run("identifiers are unique", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses the canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(knownUUID)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, knownUUID, id.String())
	})

	t.Run("accepts the variant encodings", func(t *testing.T) {
		variants := []string{
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		}

		for _, variant := range variants {
			id, err := kernel.UUIDFromString(variant)
			require.NoError(t, err, variant)
			assert.Equal(t, knownUUID, id.String())
		}
	})

	t.Run("malformed input is a validation error", func(t *testing.T) {
		// Path parameters and identity headers land here, so the error
		// must classify as invalid input rather than an internal failure.
		inputs := []string{
			"",
			"not-a-uuid",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-446655440000-extra",
			"zzze8400-e29b-41d4-a716-446655440000",
		}

		for _, input := range inputs {
			_, err := kernel.UUIDFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input: %q", input)
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through the binary form", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong length is a validation error", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil UUID bytes are rejected like the zero value", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("exposes the underlying value for DTO columns", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.IsType(t, uuid.UUID{}, id.Bytes())
		assert.Equal(t, id.String(), id.Bytes().String())
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	id1, err := kernel.UUIDFromString(knownUUID)
	require.NoError(t, err)
	id2, err := kernel.UUIDFromString(knownUUID)
	require.NoError(t, err)

	assert.True(t, id1.IsEqual(id2))
	assert.False(t, id1.IsEqual(kernel.NewUUID()))
	assert.True(t, kernel.UUID{}.IsEqual(kernel.UUID{}))
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed identifier is valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("parsed nil UUID is invalid", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.NoError(t, err)
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
