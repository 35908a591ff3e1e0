package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/namada/extension"
)

// ExtensionStub -
type ExtensionStub struct {
	ConnectCalled  func(ctx context.Context, chainID string) error
	AccountsCalled func(ctx context.Context) ([]*data.Account, error)
	SignerCalled   func() extension.Signer
}

// Connect -
func (stub *ExtensionStub) Connect(ctx context.Context, chainID string) error {
	if stub.ConnectCalled != nil {
		return stub.ConnectCalled(ctx, chainID)
	}

	return nil
}

// Accounts -
func (stub *ExtensionStub) Accounts(ctx context.Context) ([]*data.Account, error) {
	if stub.AccountsCalled != nil {
		return stub.AccountsCalled(ctx)
	}

	return nil, nil
}

// Signer -
func (stub *ExtensionStub) Signer() extension.Signer {
	if stub.SignerCalled != nil {
		return stub.SignerCalled()
	}

	return &SignerStub{}
}

// IsInterfaceNil -
func (stub *ExtensionStub) IsInterfaceNil() bool {
	return stub == nil
}
