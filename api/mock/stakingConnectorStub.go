package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/namada/staking"
)

// StakingConnectorStub -
type StakingConnectorStub struct {
	ConnectCalled    func(ctx context.Context) (staking.Session, error)
	DisconnectCalled func()
	StateCalled      func() staking.ConnectionState
	SessionCalled    func() staking.Session
}

// Connect -
func (stub *StakingConnectorStub) Connect(ctx context.Context) (staking.Session, error) {
	if stub.ConnectCalled != nil {
		return stub.ConnectCalled(ctx)
	}

	return staking.Session{Connected: true}, nil
}

// Disconnect -
func (stub *StakingConnectorStub) Disconnect() {
	if stub.DisconnectCalled != nil {
		stub.DisconnectCalled()
	}
}

// State -
func (stub *StakingConnectorStub) State() staking.ConnectionState {
	if stub.StateCalled != nil {
		return stub.StateCalled()
	}

	return staking.Connected
}

// Session -
func (stub *StakingConnectorStub) Session() staking.Session {
	if stub.SessionCalled != nil {
		return stub.SessionCalled()
	}

	return staking.Session{Connected: true}
}

// IsInterfaceNil -
func (stub *StakingConnectorStub) IsInterfaceNil() bool {
	return stub == nil
}
