package pricing

import (
	"context"
	"sort"

	"github.com/multiversx/mx-chain-core-go/core/check"
)

// MinResultsNum is the minimum number of fetcher responses accepted for a reliable median
const MinResultsNum = 1

const aggregatorName = "price aggregator"

type priceAggregator struct {
	fetchers      []PriceFetcher
	minResultsNum int
}

// NewPriceAggregator creates a component able to compute the median price of a
// pair across all the fetchers that know it. Fetcher errors only shrink the
// responses set, the call fails when fewer than minResultsNum prices remain.
func NewPriceAggregator(fetchers []PriceFetcher, minResultsNum int) (*priceAggregator, error) {
	if len(fetchers) == 0 {
		return nil, ErrEmptyFetchersSlice
	}
	for _, fetcher := range fetchers {
		if check.IfNil(fetcher) {
			return nil, ErrNilPriceFetcher
		}
	}
	if minResultsNum < MinResultsNum {
		return nil, ErrInvalidMinNumberOfResults
	}

	return &priceAggregator{
		fetchers:      fetchers,
		minResultsNum: minResultsNum,
	}, nil
}

// Name returns the name of the component
func (pa *priceAggregator) Name() string {
	return aggregatorName
}

// FetchPrice returns the median price of the provided pair
func (pa *priceAggregator) FetchPrice(ctx context.Context, base string, quote string) (float64, error) {
	prices := make([]float64, 0, len(pa.fetchers))
	for _, fetcher := range pa.fetchers {
		price, err := fetcher.FetchPrice(ctx, base, quote)
		if err != nil {
			log.Debug("fetcher failed", "fetcher", fetcher.Name(), "base", base, "quote", quote, "error", err)
			continue
		}

		prices = append(prices, price)
	}

	if len(prices) < pa.minResultsNum {
		return 0, ErrNotEnoughResponses
	}

	return median(prices), nil
}

func median(values []float64) float64 {
	sort.Float64s(values)

	middle := len(values) / 2
	if len(values)%2 == 1 {
		return values[middle]
	}

	return (values[middle-1] + values[middle]) / 2
}

// IsInterfaceNil returns true if there is no value under the interface
func (pa *priceAggregator) IsInterfaceNil() bool {
	return pa == nil
}
