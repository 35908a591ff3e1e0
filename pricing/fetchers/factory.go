package fetchers

import (
	"fmt"

	"github.com/ethicalnode/staking-gateway-go/pricing"
)

// BinanceName is the name of the Binance ticker fetcher
const BinanceName = "Binance"

// KrakenName is the name of the Kraken ticker fetcher
const KrakenName = "Kraken"

// CoingeckoName is the name of the CoinGecko fetcher
const CoingeckoName = "CoinGecko"

// ImplementedFetchers is the map of all implemented fetcher names
var ImplementedFetchers = map[string]struct{}{
	BinanceName:   {},
	KrakenName:    {},
	CoingeckoName: {},
}

// ArgsPriceFetcher represents the arguments for the NewPriceFetcher function
type ArgsPriceFetcher struct {
	FetcherName    string
	ResponseGetter pricing.ResponseGetter
}

// NewPriceFetcher returns a new price fetcher of the type provided
func NewPriceFetcher(args ArgsPriceFetcher) (pricing.PriceFetcher, error) {
	if args.ResponseGetter == nil {
		return nil, errNilResponseGetter
	}

	switch args.FetcherName {
	case BinanceName:
		return &binance{
			ResponseGetter: args.ResponseGetter,
			baseFetcher:    newBaseFetcher(),
		}, nil
	case KrakenName:
		return &kraken{
			ResponseGetter: args.ResponseGetter,
			baseFetcher:    newBaseFetcher(),
		}, nil
	case CoingeckoName:
		return &coingecko{
			ResponseGetter: args.ResponseGetter,
			baseFetcher:    newBaseFetcher(),
		}, nil
	}

	return nil, fmt.Errorf("%w, fetcherName %s", errInvalidFetcherName, args.FetcherName)
}
