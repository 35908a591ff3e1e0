package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/namada/staking"
)

// StakingDelegatorStub -
type StakingDelegatorStub struct {
	DelegateCalled func(ctx context.Context, request *staking.DelegateRequest) (*data.TxResult, error)
}

// Delegate -
func (stub *StakingDelegatorStub) Delegate(ctx context.Context, request *staking.DelegateRequest) (*data.TxResult, error) {
	if stub.DelegateCalled != nil {
		return stub.DelegateCalled(ctx, request)
	}

	return &data.TxResult{Hash: "stub-hash", Height: 1}, nil
}

// IsInterfaceNil -
func (stub *StakingDelegatorStub) IsInterfaceNil() bool {
	return stub == nil
}
