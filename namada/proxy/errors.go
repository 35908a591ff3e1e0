package proxy

import "errors"

var (
	errEmptyRPCURL         = errors.New("empty rpc url")
	errNilHTTPClient       = errors.New("nil http client")
	errNilTx               = errors.New("nil transaction")
	errUnsignedTx          = errors.New("transaction is not signed")
	errRPCCallFailed       = errors.New("rpc call failed")
	errInvalidQueryValue   = errors.New("invalid query value encoding")
	errInvalidBalanceValue = errors.New("invalid balance value")
	errChainIDMismatch     = errors.New("chain id mismatch")
)
