package builders

import "errors"

var (
	errEmptyChainID     = errors.New("empty chain id")
	errEmptyNativeToken = errors.New("empty native token identifier")
	errEmptyAmount      = errors.New("empty amount")
	errInvalidAmount    = errors.New("invalid amount")
	errInvalidGasLimit  = errors.New("invalid gas limit")
	errEmptyPublicKey   = errors.New("empty public key")
)
