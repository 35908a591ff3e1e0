package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// TransparentHRP is the human readable part of Namada transparent addresses
const TransparentHRP = "tnam"

// ShieldedHRP is the human readable part of Namada shielded payment addresses
const ShieldedHRP = "znam"

const separator = "1"

type nmAddress struct {
	hrp   string
	bytes []byte
}

// NewAddress decodes a bech32m encoded Namada address
func NewAddress(encoded string) (*nmAddress, error) {
	hrp, data, version, err := bech32.DecodeGeneric(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errDecodeFailed, err.Error())
	}
	if version != bech32.VersionM {
		return nil, errNotBech32m
	}
	if hrp != TransparentHRP && hrp != ShieldedHRP {
		return nil, fmt.Errorf("%w: %s", errUnknownHRP, hrp)
	}

	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errDecodeFailed, err.Error())
	}

	return &nmAddress{
		hrp:   hrp,
		bytes: converted,
	}, nil
}

// NewTransparentAddress encodes the provided bytes as a transparent address
func NewTransparentAddress(bytes []byte) (*nmAddress, error) {
	return encode(TransparentHRP, bytes)
}

// NewShieldedAddress encodes the provided bytes as a shielded payment address
func NewShieldedAddress(bytes []byte) (*nmAddress, error) {
	return encode(ShieldedHRP, bytes)
}

func encode(hrp string, bytes []byte) (*nmAddress, error) {
	if len(bytes) == 0 {
		return nil, errEmptyAddressBytes
	}

	return &nmAddress{
		hrp:   hrp,
		bytes: bytes,
	}, nil
}

// Bech32 returns the bech32m string representation
func (addr *nmAddress) Bech32() (string, error) {
	converted, err := bech32.ConvertBits(addr.bytes, 8, 5, true)
	if err != nil {
		return "", err
	}

	return bech32.EncodeM(addr.hrp, converted)
}

// Bytes returns the raw address bytes
func (addr *nmAddress) Bytes() []byte {
	return addr.bytes
}

// IsTransparent returns true for addresses on the transparent chain
func (addr *nmAddress) IsTransparent() bool {
	return addr.hrp == TransparentHRP
}

// IsShielded returns true for shielded pool payment addresses
func (addr *nmAddress) IsShielded() bool {
	return addr.hrp == ShieldedHRP
}

// HasTransparentPrefix is a cheap prefix classification that does not verify
// the checksum. The extension account selection uses it, full validation
// happens when the address reaches a transaction builder.
func HasTransparentPrefix(encoded string) bool {
	return strings.HasPrefix(encoded, TransparentHRP+separator)
}

// HasShieldedPrefix reports whether the string looks like a shielded payment address
func HasShieldedPrefix(encoded string) bool {
	return strings.HasPrefix(encoded, ShieldedHRP+separator)
}

// ValidateTransparent decodes the address and checks it lives on the transparent chain
func ValidateTransparent(encoded string) error {
	addr, err := NewAddress(encoded)
	if err != nil {
		return err
	}
	if !addr.IsTransparent() {
		return fmt.Errorf("%w: %s", errNotTransparent, encoded)
	}

	return nil
}
