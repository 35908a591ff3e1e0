package staking

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/namada/extension"
)

// Proxy is the chain client handle the delegator lazily constructs. It wraps
// the external RPC surface, this repo does not implement the wire protocol.
type Proxy interface {
	GetBalance(ctx context.Context, owner string, token string) (string, error)
	IsPublicKeyRevealed(ctx context.Context, owner string) (bool, error)
	BroadcastTx(ctx context.Context, tx *data.Tx) (*data.TxResult, error)
	IsInterfaceNil() bool
}

// ProxyFactory creates chain client handles bound to an RPC endpoint and chain id
type ProxyFactory interface {
	CreateProxy(ctx context.Context, rpcURL string, chainID string) (Proxy, error)
	IsInterfaceNil() bool
}

// ExtensionLocator resolves the injected wallet extension. A nil extension
// with a nil error means no wallet is installed.
type ExtensionLocator interface {
	Locate(ctx context.Context) (extension.Extension, error)
	IsInterfaceNil() bool
}

// TxBuilder assembles sign-ready transaction envelopes
type TxBuilder interface {
	BuildBond(source string, validator string, displayAmount string, memo string) (*data.Tx, error)
	BuildRevealPK(source string, publicKey string) (*data.Tx, error)
	IsInterfaceNil() bool
}

// Connector is the wallet session owner the delegator operates on
type Connector interface {
	Session() Session
	Extension() extension.Extension
	CachedProxy() Proxy
	StoreProxy(proxy Proxy)
	IsInterfaceNil() bool
}
