package fetchers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethicalnode/staking-gateway-go/pricing"
)

const coingeckoPriceURL = "https://api.coingecko.com/api/v3/simple/price?ids=%s&vs_currencies=%s"

// coingecko quotes by asset id, not ticker
var coingeckoIDs = map[string]string{
	"NAM":  "namada",
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"ATOM": "cosmos",
	"OSMO": "osmosis",
}

type coingeckoPriceRequest map[string]map[string]float64

type coingecko struct {
	pricing.ResponseGetter
	*baseFetcher
}

// FetchPrice will fetch the price using the http client
func (c *coingecko) FetchPrice(ctx context.Context, base string, quote string) (float64, error) {
	if !c.hasPair(base, quote) {
		return 0, pricing.ErrPairNotSupported
	}

	assetID := coingeckoAssetID(base)
	currency := strings.ToLower(quote)

	var cpr coingeckoPriceRequest
	err := c.ResponseGetter.Get(ctx, fmt.Sprintf(coingeckoPriceURL, assetID, currency), &cpr)
	if err != nil {
		return 0, err
	}

	quotes, found := cpr[assetID]
	if !found {
		return 0, errInvalidResponseData
	}

	return PositiveFloat64(quotes[currency])
}

// Name returns the name
func (c *coingecko) Name() string {
	return CoingeckoName
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *coingecko) IsInterfaceNil() bool {
	return c == nil
}

func coingeckoAssetID(base string) string {
	assetID, found := coingeckoIDs[base]
	if found {
		return assetID
	}

	return strings.ToLower(base)
}
