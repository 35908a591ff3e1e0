package pricing

import "errors"

var (
	// ErrNilPriceAggregator signals that a nil price aggregator was provided
	ErrNilPriceAggregator = errors.New("nil price aggregator")

	// ErrNilPriceNotifee signals that a nil price notifee was provided
	ErrNilPriceNotifee = errors.New("nil price notifee")

	// ErrEmptyArgsPairsSlice signals that an empty pairs slice was provided
	ErrEmptyArgsPairsSlice = errors.New("empty pairs slice")

	// ErrNilArgsPair signals that a nil pair argument was provided
	ErrNilArgsPair = errors.New("nil pair argument")

	// ErrInvalidAutoSendInterval signals that an invalid auto send interval was provided
	ErrInvalidAutoSendInterval = errors.New("invalid auto send interval")

	// ErrInvalidDecimals signals that an invalid decimals value was provided
	ErrInvalidDecimals = errors.New("invalid decimals")

	// ErrNilBaseName signals that an empty base name was provided
	ErrNilBaseName = errors.New("nil base name")

	// ErrNilQuoteName signals that an empty quote name was provided
	ErrNilQuoteName = errors.New("nil quote name")

	// ErrEmptyFetchersSlice signals that an empty fetchers slice was provided
	ErrEmptyFetchersSlice = errors.New("empty fetchers slice")

	// ErrNilPriceFetcher signals that a nil price fetcher was provided
	ErrNilPriceFetcher = errors.New("nil price fetcher")

	// ErrInvalidMinNumberOfResults signals that an invalid minimum number of results was provided
	ErrInvalidMinNumberOfResults = errors.New("invalid minimum number of results")

	// ErrNotEnoughResponses signals that not enough fetchers returned a price
	ErrNotEnoughResponses = errors.New("not enough responses to compute a reliable price")

	// ErrPairNotSupported signals that the provided pair was not added on the fetcher
	ErrPairNotSupported = errors.New("pair not supported")
)
