package notifees

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethicalnode/staking-gateway-go/pricing"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

// PriceUpdateEvent is the event type pushed to the websocket clients on a price change
const PriceUpdateEvent = "price_update"

var log = logger.GetOrCreate("staking-gateway-go/pricing/notifees")

// ArgsGatewayNotifee is the argument DTO for the NewGatewayNotifee function
type ArgsGatewayNotifee struct {
	Broadcaster Broadcaster
}

type gatewayNotifee struct {
	mut         sync.RWMutex
	latest      map[string]*pricing.ArgsPriceChanged
	broadcaster Broadcaster
}

// NewGatewayNotifee creates the notifee serving the platform surfaces: it
// keeps the last notified price of each pair and fans every change out to the
// websocket clients
func NewGatewayNotifee(args ArgsGatewayNotifee) (*gatewayNotifee, error) {
	if check.IfNil(args.Broadcaster) {
		return nil, errNilBroadcaster
	}

	return &gatewayNotifee{
		latest:      make(map[string]*pricing.ArgsPriceChanged),
		broadcaster: args.Broadcaster,
	}, nil
}

// PriceChanged is the function that gets called by a price notifier
func (gn *gatewayNotifee) PriceChanged(ctx context.Context, priceChanges []*pricing.ArgsPriceChanged) error {
	for idx, change := range priceChanges {
		if change == nil {
			return fmt.Errorf("%w, index %d", errNilPriceChange, idx)
		}
	}

	gn.mut.Lock()
	for _, change := range priceChanges {
		gn.latest[pairKey(change.Base, change.Quote)] = change
	}
	gn.mut.Unlock()

	gn.broadcaster.Broadcast(PriceUpdateEvent, priceChanges)
	log.Trace("price changes pushed", "numChanges", len(priceChanges))

	return nil
}

// Latest returns the last notified price of the provided pair, if any
func (gn *gatewayNotifee) Latest(base string, quote string) (*pricing.ArgsPriceChanged, bool) {
	gn.mut.RLock()
	defer gn.mut.RUnlock()

	change, found := gn.latest[pairKey(base, quote)]

	return change, found
}

// LatestAll returns the last notified price of every watched pair
func (gn *gatewayNotifee) LatestAll() []*pricing.ArgsPriceChanged {
	gn.mut.RLock()
	defer gn.mut.RUnlock()

	changes := make([]*pricing.ArgsPriceChanged, 0, len(gn.latest))
	for _, change := range gn.latest {
		changes = append(changes, change)
	}

	return changes
}

func pairKey(base, quote string) string {
	return fmt.Sprintf("%s-%s", base, quote)
}

// IsInterfaceNil returns true if there is no value under the interface
func (gn *gatewayNotifee) IsInterfaceNil() bool {
	return gn == nil
}
