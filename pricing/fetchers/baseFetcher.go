package fetchers

import (
	"fmt"
	"strconv"
	"sync"
)

const quoteUSDFiat = "USD"

type baseFetcher struct {
	mut   sync.RWMutex
	pairs map[string]struct{}
}

func newBaseFetcher() *baseFetcher {
	return &baseFetcher{
		pairs: make(map[string]struct{}),
	}
}

// AddPair adds the provided pair on the watched pairs map
func (b *baseFetcher) AddPair(base, quote string) {
	b.mut.Lock()
	defer b.mut.Unlock()

	b.pairs[pairKey(base, quote)] = struct{}{}
}

func (b *baseFetcher) hasPair(base, quote string) bool {
	b.mut.RLock()
	defer b.mut.RUnlock()

	_, found := b.pairs[pairKey(base, quote)]

	return found
}

func pairKey(base, quote string) string {
	return fmt.Sprintf("%s-%s", base, quote)
}

// StrToPositiveFloat64 parses the provided string into a strictly positive float
func StrToPositiveFloat64(value string) (float64, error) {
	if len(value) == 0 {
		return 0, errInvalidResponseData
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return 0, errInvalidResponseData
	}

	return parsed, nil
}

// PositiveFloat64 validates the provided float is strictly positive
func PositiveFloat64(value float64) (float64, error) {
	if value <= 0 {
		return 0, errInvalidResponseData
	}

	return value, nil
}
