package pricing

import (
	"fmt"
	"math"
)

const maxDecimals = 18

// ArgsPair is the argument DTO for a watched price pair
type ArgsPair struct {
	Base                      string
	Quote                     string
	PercentDifferenceToNotify uint32
	Decimals                  uint64
	Exchanges                 map[string]struct{}
}

type pair struct {
	base                      string
	quote                     string
	percentDifferenceToNotify uint32
	decimals                  uint64
	denominationFactor        uint64
	trimPrecision             float64
	exchanges                 map[string]struct{}
}

func newPair(args *ArgsPair) (*pair, error) {
	if len(args.Base) == 0 {
		return nil, ErrNilBaseName
	}
	if len(args.Quote) == 0 {
		return nil, ErrNilQuoteName
	}
	if args.Decimals == 0 || args.Decimals > maxDecimals {
		return nil, fmt.Errorf("%w: %d for pair %s-%s", ErrInvalidDecimals, args.Decimals, args.Base, args.Quote)
	}

	denominationFactor := uint64(math.Pow10(int(args.Decimals)))

	return &pair{
		base:                      args.Base,
		quote:                     args.Quote,
		percentDifferenceToNotify: args.PercentDifferenceToNotify,
		decimals:                  args.Decimals,
		denominationFactor:        denominationFactor,
		trimPrecision:             1 / float64(denominationFactor),
		exchanges:                 args.Exchanges,
	}, nil
}

// trim rounds the value to the pair's precision so that repeated float noise
// below one denominated unit does not trigger notifications
func trim(value float64, precision float64) float64 {
	return math.Round(value/precision) * precision
}
