package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/pricing"
)

// PriceNotifeeStub -
type PriceNotifeeStub struct {
	PriceChangedCalled func(ctx context.Context, priceChanges []*pricing.ArgsPriceChanged) error
}

// PriceChanged -
func (stub *PriceNotifeeStub) PriceChanged(ctx context.Context, priceChanges []*pricing.ArgsPriceChanged) error {
	if stub.PriceChangedCalled != nil {
		return stub.PriceChangedCalled(ctx, priceChanges)
	}

	return nil
}

// IsInterfaceNil -
func (stub *PriceNotifeeStub) IsInterfaceNil() bool {
	return stub == nil
}
