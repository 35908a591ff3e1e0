package fetchers

import (
	"context"
	"fmt"

	"github.com/ethicalnode/staking-gateway-go/pricing"
)

const krakenPriceURL = "https://api.kraken.com/0/public/Ticker?pair=%s%s"

type krakenPricePair struct {
	C []string `json:"c"`
}

type krakenPriceRequest struct {
	Result map[string]krakenPricePair `json:"result"`
}

type kraken struct {
	pricing.ResponseGetter
	*baseFetcher
}

// FetchPrice will fetch the price using the http client
func (k *kraken) FetchPrice(ctx context.Context, base string, quote string) (float64, error) {
	if !k.hasPair(base, quote) {
		return 0, pricing.ErrPairNotSupported
	}

	var kpr krakenPriceRequest
	err := k.ResponseGetter.Get(ctx, fmt.Sprintf(krakenPriceURL, base, quote), &kpr)
	if err != nil {
		return 0, err
	}

	// kraken returns a single entry keyed by its own pair spelling
	for _, pricePair := range kpr.Result {
		if len(pricePair.C) == 0 {
			return 0, errInvalidResponseData
		}

		return StrToPositiveFloat64(pricePair.C[0])
	}

	return 0, errInvalidResponseData
}

// Name returns the name
func (k *kraken) Name() string {
	return KrakenName
}

// IsInterfaceNil returns true if there is no value under the interface
func (k *kraken) IsInterfaceNil() bool {
	return k == nil
}
