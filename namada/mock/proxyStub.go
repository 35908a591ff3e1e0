package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
)

// ProxyStub -
type ProxyStub struct {
	GetBalanceCalled          func(ctx context.Context, owner string, token string) (string, error)
	IsPublicKeyRevealedCalled func(ctx context.Context, owner string) (bool, error)
	BroadcastTxCalled         func(ctx context.Context, tx *data.Tx) (*data.TxResult, error)
}

// GetBalance -
func (stub *ProxyStub) GetBalance(ctx context.Context, owner string, token string) (string, error) {
	if stub.GetBalanceCalled != nil {
		return stub.GetBalanceCalled(ctx, owner, token)
	}

	return "0", nil
}

// IsPublicKeyRevealed -
func (stub *ProxyStub) IsPublicKeyRevealed(ctx context.Context, owner string) (bool, error) {
	if stub.IsPublicKeyRevealedCalled != nil {
		return stub.IsPublicKeyRevealedCalled(ctx, owner)
	}

	return true, nil
}

// BroadcastTx -
func (stub *ProxyStub) BroadcastTx(ctx context.Context, tx *data.Tx) (*data.TxResult, error) {
	if stub.BroadcastTxCalled != nil {
		return stub.BroadcastTxCalled(ctx, tx)
	}

	return &data.TxResult{Hash: "stub-hash", Height: 1, Code: 0}, nil
}

// IsInterfaceNil -
func (stub *ProxyStub) IsInterfaceNil() bool {
	return stub == nil
}
