package api

import (
	"context"
	"net/http"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/namada/staking"
	"github.com/ethicalnode/staking-gateway-go/pricing"
)

// StakingConnector manages the operational wallet session
type StakingConnector interface {
	Connect(ctx context.Context) (staking.Session, error)
	Disconnect()
	State() staking.ConnectionState
	Session() staking.Session
	IsInterfaceNil() bool
}

// StakingDelegator drives the bond flow against the chain
type StakingDelegator interface {
	Delegate(ctx context.Context, request *staking.DelegateRequest) (*data.TxResult, error)
	IsInterfaceNil() bool
}

// PriceProvider serves the last notified prices
type PriceProvider interface {
	Latest(base string, quote string) (*pricing.ArgsPriceChanged, bool)
	LatestAll() []*pricing.ArgsPriceChanged
	IsInterfaceNil() bool
}

// Broadcaster pushes an event to all the connected websocket clients
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
	IsInterfaceNil() bool
}

// WSHandler is the websocket upgrade endpoint
type WSHandler interface {
	http.Handler
	IsInterfaceNil() bool
}
