package extension

import "errors"

var (
	errNilWallet     = errors.New("nil wallet")
	errEmptyChainID  = errors.New("empty chain id")
	errChainMismatch = errors.New("chain id mismatch")
	errUnknownOwner  = errors.New("owner address does not belong to this wallet")
	errNilTx         = errors.New("nil transaction in signing batch")
)
