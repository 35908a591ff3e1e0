package extension

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
)

// Signer signs a batch of transaction envelopes with the key owning the
// provided address. All transactions of a flow go through one Sign call.
type Signer interface {
	Sign(ctx context.Context, txs []*data.Tx, owner string) ([]*data.Tx, error)
	IsInterfaceNil() bool
}

// Extension mirrors the injected wallet surface: approve a connection for a
// chain, list the available accounts and expose the signer.
type Extension interface {
	Connect(ctx context.Context, chainID string) error
	Accounts(ctx context.Context) ([]*data.Account, error)
	Signer() Signer
	IsInterfaceNil() bool
}
