package fetchers

import (
	"context"
	"fmt"

	"github.com/ethicalnode/staking-gateway-go/pricing"
)

const binancePriceURL = "https://api.binance.com/api/v3/ticker/price?symbol=%s%s"

type binancePriceRequest struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

type binance struct {
	pricing.ResponseGetter
	*baseFetcher
}

// FetchPrice will fetch the price using the http client
func (b *binance) FetchPrice(ctx context.Context, base string, quote string) (float64, error) {
	if !b.hasPair(base, quote) {
		return 0, pricing.ErrPairNotSupported
	}

	var bpr binancePriceRequest
	err := b.ResponseGetter.Get(ctx, fmt.Sprintf(binancePriceURL, base, fiatToStablecoin(quote)), &bpr)
	if err != nil {
		return 0, err
	}

	return StrToPositiveFloat64(bpr.Price)
}

// Name returns the name
func (b *binance) Name() string {
	return BinanceName
}

// IsInterfaceNil returns true if there is no value under the interface
func (b *binance) IsInterfaceNil() bool {
	return b == nil
}

// fiatToStablecoin maps the USD quote to the USDT ticker used by the
// centralized exchanges that do not list fiat pairs directly
func fiatToStablecoin(quote string) string {
	if quote == quoteUSDFiat {
		return "USDT"
	}

	return quote
}
