package staking

import "errors"

var (
	// ErrNotConnected signals that an operation requiring a wallet session was called while disconnected
	ErrNotConnected = errors.New("wallet not connected")
	// ErrExtensionMissing signals that no wallet extension is installed
	ErrExtensionMissing = errors.New("wallet extension missing")
	// ErrConnectRejected signals that the extension refused the connection request
	ErrConnectRejected = errors.New("wallet extension rejected the connection")
	// ErrNoAccounts signals that the extension exposed no accounts
	ErrNoAccounts = errors.New("no accounts available in the wallet extension")
	// ErrClientInit signals that the chain client could not be initialized
	ErrClientInit = errors.New("chain client initialization failed")
	// ErrSigningUnavailable signals that the extension exposes no signer
	ErrSigningUnavailable = errors.New("signing unavailable")
	// ErrEmptySignature signals that the signer returned no usable signatures
	ErrEmptySignature = errors.New("empty signature result")
	// ErrTxRejected signals an on-chain rejection of a broadcast transaction
	ErrTxRejected = errors.New("transaction rejected on-chain")

	// ErrNilExtensionLocator signals that a nil extension locator was provided
	ErrNilExtensionLocator = errors.New("nil extension locator")
	// ErrNilConnector signals that a nil connector was provided
	ErrNilConnector = errors.New("nil connector")
	// ErrNilProxyFactory signals that a nil proxy factory was provided
	ErrNilProxyFactory = errors.New("nil proxy factory")
	// ErrNilTxBuilder signals that a nil tx builder was provided
	ErrNilTxBuilder = errors.New("nil tx builder")
	// ErrNilDelegateRequest signals that a nil delegate request was provided
	ErrNilDelegateRequest = errors.New("nil delegate request")
	// ErrEmptyChainID signals that an empty chain id was provided
	ErrEmptyChainID = errors.New("empty chain id")
	// ErrEmptyRPCURL signals that an empty rpc url was provided
	ErrEmptyRPCURL = errors.New("empty rpc url")
	// ErrEmptyNativeToken signals that an empty native token address was provided
	ErrEmptyNativeToken = errors.New("empty native token")
	// ErrEmptyValidatorAddress signals that an empty validator address was provided
	ErrEmptyValidatorAddress = errors.New("empty validator address")
)
