package mock

import (
	"github.com/ethicalnode/staking-gateway-go/pricing"
)

// PriceProviderStub -
type PriceProviderStub struct {
	LatestCalled    func(base string, quote string) (*pricing.ArgsPriceChanged, bool)
	LatestAllCalled func() []*pricing.ArgsPriceChanged
}

// Latest -
func (stub *PriceProviderStub) Latest(base string, quote string) (*pricing.ArgsPriceChanged, bool) {
	if stub.LatestCalled != nil {
		return stub.LatestCalled(base, quote)
	}

	return nil, false
}

// LatestAll -
func (stub *PriceProviderStub) LatestAll() []*pricing.ArgsPriceChanged {
	if stub.LatestAllCalled != nil {
		return stub.LatestAllCalled()
	}

	return nil
}

// IsInterfaceNil -
func (stub *PriceProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
