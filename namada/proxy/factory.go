package proxy

import (
	"context"
	"fmt"

	"github.com/ethicalnode/staking-gateway-go/httpclient"
	"github.com/ethicalnode/staking-gateway-go/namada/staking"
)

// proxyFactory creates proxies bound to an RPC endpoint and verifies that the
// endpoint actually serves the requested chain
type proxyFactory struct {
}

// NewProxyFactory creates the chain client factory used by the delegate flow
func NewProxyFactory() *proxyFactory {
	return &proxyFactory{}
}

// CreateProxy builds a chain client handle for the given endpoint and chain id
func (pf *proxyFactory) CreateProxy(ctx context.Context, rpcURL string, chainID string) (staking.Proxy, error) {
	client, err := httpclient.NewRestClient(httpclient.ArgsRestClient{})
	if err != nil {
		return nil, err
	}

	namadaProxy, err := NewProxy(ArgsProxy{
		RPCURL: rpcURL,
		Client: client,
	})
	if err != nil {
		return nil, err
	}

	remoteChainID, err := namadaProxy.GetChainID(ctx)
	if err != nil {
		return nil, err
	}
	if len(chainID) > 0 && remoteChainID != chainID {
		return nil, fmt.Errorf("%w: endpoint serves %s, expected %s", errChainIDMismatch, remoteChainID, chainID)
	}

	return namadaProxy, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (pf *proxyFactory) IsInterfaceNil() bool {
	return pf == nil
}
