package address_test

import (
	"bytes"
	"testing"

	"github.com/ethicalnode/staking-gateway-go/namada/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedTransparent(t *testing.T, raw []byte) string {
	addr, err := address.NewTransparentAddress(raw)
	require.Nil(t, err)

	encoded, err := addr.Bech32()
	require.Nil(t, err)

	return encoded
}

func TestNewAddress(t *testing.T) {
	t.Parallel()

	t.Run("garbage string should error", func(t *testing.T) {
		t.Parallel()

		addr, err := address.NewAddress("not an address")
		assert.Nil(t, addr)
		assert.NotNil(t, err)
	})
	t.Run("round trip transparent address", func(t *testing.T) {
		t.Parallel()

		raw := bytes.Repeat([]byte{7}, 21)
		encoded := encodedTransparent(t, raw)

		decoded, err := address.NewAddress(encoded)
		require.Nil(t, err)
		assert.Equal(t, raw, decoded.Bytes())
		assert.True(t, decoded.IsTransparent())
		assert.False(t, decoded.IsShielded())
	})
	t.Run("round trip shielded address", func(t *testing.T) {
		t.Parallel()

		raw := bytes.Repeat([]byte{3}, 21)
		addr, err := address.NewShieldedAddress(raw)
		require.Nil(t, err)

		encoded, err := addr.Bech32()
		require.Nil(t, err)

		decoded, err := address.NewAddress(encoded)
		require.Nil(t, err)
		assert.True(t, decoded.IsShielded())
	})
}

func TestPrefixClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, address.HasTransparentPrefix("tnam1qq9qvzw"))
	assert.False(t, address.HasTransparentPrefix("znam1qq9qvzw"))
	assert.False(t, address.HasTransparentPrefix("tnamqq9qvzw"))
	assert.True(t, address.HasShieldedPrefix("znam1qq9qvzw"))
	assert.False(t, address.HasShieldedPrefix(""))
}

func TestValidateTransparent(t *testing.T) {
	t.Parallel()

	t.Run("valid transparent address", func(t *testing.T) {
		t.Parallel()

		encoded := encodedTransparent(t, bytes.Repeat([]byte{9}, 21))
		assert.Nil(t, address.ValidateTransparent(encoded))
	})
	t.Run("shielded address should error", func(t *testing.T) {
		t.Parallel()

		addr, err := address.NewShieldedAddress(bytes.Repeat([]byte{9}, 21))
		require.Nil(t, err)
		encoded, err := addr.Bech32()
		require.Nil(t, err)

		assert.NotNil(t, address.ValidateTransparent(encoded))
	})
	t.Run("malformed address should error", func(t *testing.T) {
		t.Parallel()

		assert.NotNil(t, address.ValidateTransparent("tnam1notvalid"))
	})
}
