package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
)

// SignerStub -
type SignerStub struct {
	SignCalled func(ctx context.Context, txs []*data.Tx, owner string) ([]*data.Tx, error)
}

// Sign -
func (stub *SignerStub) Sign(ctx context.Context, txs []*data.Tx, owner string) ([]*data.Tx, error) {
	if stub.SignCalled != nil {
		return stub.SignCalled(ctx, txs, owner)
	}

	signed := make([]*data.Tx, 0, len(txs))
	for _, tx := range txs {
		signedTx := *tx
		signedTx.Signature = []byte("stub signature")
		signed = append(signed, &signedTx)
	}

	return signed, nil
}

// IsInterfaceNil -
func (stub *SignerStub) IsInterfaceNil() bool {
	return stub == nil
}
