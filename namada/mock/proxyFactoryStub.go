package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/staking"
)

// ProxyFactoryStub -
type ProxyFactoryStub struct {
	CreateProxyCalled func(ctx context.Context, rpcURL string, chainID string) (staking.Proxy, error)
}

// CreateProxy -
func (stub *ProxyFactoryStub) CreateProxy(ctx context.Context, rpcURL string, chainID string) (staking.Proxy, error) {
	if stub.CreateProxyCalled != nil {
		return stub.CreateProxyCalled(ctx, rpcURL, chainID)
	}

	return &ProxyStub{}, nil
}

// IsInterfaceNil -
func (stub *ProxyFactoryStub) IsInterfaceNil() bool {
	return stub == nil
}
