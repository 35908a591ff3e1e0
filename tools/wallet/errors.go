package wallet

import "errors"

var (
	errInvalidMnemonic = errors.New("invalid mnemonic")
	errInvalidSeed     = errors.New("invalid seed")
	errInvalidKeystore = errors.New("invalid keystore file")
	errWrongPassword   = errors.New("wrong keystore password")
)
