package address

import "errors"

var (
	errDecodeFailed      = errors.New("unable to decode bech32 address")
	errNotBech32m        = errors.New("address is not bech32m encoded")
	errUnknownHRP        = errors.New("unknown address prefix")
	errNotTransparent    = errors.New("address is not a transparent chain address")
	errEmptyAddressBytes = errors.New("empty address bytes")
)
