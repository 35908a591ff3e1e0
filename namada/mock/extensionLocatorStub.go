package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/extension"
)

// ExtensionLocatorStub -
type ExtensionLocatorStub struct {
	LocateCalled func(ctx context.Context) (extension.Extension, error)
}

// Locate -
func (stub *ExtensionLocatorStub) Locate(ctx context.Context) (extension.Extension, error) {
	if stub.LocateCalled != nil {
		return stub.LocateCalled(ctx)
	}

	return &ExtensionStub{}, nil
}

// IsInterfaceNil -
func (stub *ExtensionLocatorStub) IsInterfaceNil() bool {
	return stub == nil
}
