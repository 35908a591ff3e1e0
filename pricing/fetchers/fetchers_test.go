package fetchers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ethicalnode/staking-gateway-go/pricing"
	"github.com/ethicalnode/staking-gateway-go/pricing/mock"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceFetcher(t *testing.T) {
	t.Parallel()

	t.Run("nil response getter should error", func(t *testing.T) {
		t.Parallel()

		fetcher, err := NewPriceFetcher(ArgsPriceFetcher{FetcherName: BinanceName})
		assert.Nil(t, fetcher)
		assert.Equal(t, errNilResponseGetter, err)
	})
	t.Run("invalid fetcher name should error", func(t *testing.T) {
		t.Parallel()

		args := ArgsPriceFetcher{
			FetcherName:    "unknown",
			ResponseGetter: &mock.HttpResponseGetterStub{},
		}
		fetcher, err := NewPriceFetcher(args)
		assert.Nil(t, fetcher)
		assert.True(t, errors.Is(err, errInvalidFetcherName))
	})
}

func Test_FetchPriceErrors(t *testing.T) {
	t.Parallel()

	namTicker := "NAM"
	pair := namTicker + quoteUSDFiat

	expectedError := errors.New("expected error")
	for f := range ImplementedFetchers {
		fetcherName := f

		t.Run("response getter errors should error "+fetcherName, func(t *testing.T) {
			t.Parallel()

			args := ArgsPriceFetcher{
				FetcherName: fetcherName,
				ResponseGetter: &mock.HttpResponseGetterStub{
					GetCalled: getFuncGetCalled(fetcherName, "", pair, expectedError),
				},
			}
			fetcher, _ := NewPriceFetcher(args)
			assert.False(t, check.IfNil(fetcher))

			fetcher.AddPair(namTicker, quoteUSDFiat)
			price, err := fetcher.FetchPrice(context.Background(), namTicker, quoteUSDFiat)
			require.Equal(t, expectedError, err)
			require.Equal(t, float64(0), price)
		})
		t.Run("empty string for price should error "+fetcherName, func(t *testing.T) {
			t.Parallel()

			args := ArgsPriceFetcher{
				FetcherName: fetcherName,
				ResponseGetter: &mock.HttpResponseGetterStub{
					GetCalled: getFuncGetCalled(fetcherName, "", pair, nil),
				},
			}
			fetcher, _ := NewPriceFetcher(args)
			assert.False(t, check.IfNil(fetcher))

			fetcher.AddPair(namTicker, quoteUSDFiat)
			price, err := fetcher.FetchPrice(context.Background(), namTicker, quoteUSDFiat)
			require.Equal(t, errInvalidResponseData, err)
			require.Equal(t, float64(0), price)
		})
		t.Run("negative price should error "+fetcherName, func(t *testing.T) {
			t.Parallel()

			args := ArgsPriceFetcher{
				FetcherName: fetcherName,
				ResponseGetter: &mock.HttpResponseGetterStub{
					GetCalled: getFuncGetCalled(fetcherName, "-1", pair, nil),
				},
			}
			fetcher, _ := NewPriceFetcher(args)
			assert.False(t, check.IfNil(fetcher))

			fetcher.AddPair(namTicker, quoteUSDFiat)
			price, err := fetcher.FetchPrice(context.Background(), namTicker, quoteUSDFiat)
			require.Equal(t, errInvalidResponseData, err)
			require.Equal(t, float64(0), price)
		})
		t.Run("invalid string for price should error "+fetcherName, func(t *testing.T) {
			t.Parallel()

			if fetcherName == CoingeckoName {
				// the coingecko response model holds floats directly
				return
			}

			args := ArgsPriceFetcher{
				FetcherName: fetcherName,
				ResponseGetter: &mock.HttpResponseGetterStub{
					GetCalled: getFuncGetCalled(fetcherName, "not a number", pair, nil),
				},
			}
			fetcher, _ := NewPriceFetcher(args)
			assert.False(t, check.IfNil(fetcher))

			fetcher.AddPair(namTicker, quoteUSDFiat)
			price, err := fetcher.FetchPrice(context.Background(), namTicker, quoteUSDFiat)
			require.NotNil(t, err)
			require.Equal(t, float64(0), price)
			require.IsType(t, err, &strconv.NumError{})
		})
		t.Run("pair not added should error "+fetcherName, func(t *testing.T) {
			t.Parallel()

			args := ArgsPriceFetcher{
				FetcherName: fetcherName,
				ResponseGetter: &mock.HttpResponseGetterStub{
					GetCalled: getFuncGetCalled(fetcherName, "", pair, nil),
				},
			}
			fetcher, _ := NewPriceFetcher(args)
			assert.False(t, check.IfNil(fetcher))

			price, err := fetcher.FetchPrice(context.Background(), namTicker, quoteUSDFiat)
			require.Equal(t, pricing.ErrPairNotSupported, err)
			require.Equal(t, float64(0), price)
			assert.Equal(t, fetcherName, fetcher.Name())
		})
		t.Run("should work nam-usd "+fetcherName, func(t *testing.T) {
			t.Parallel()

			args := ArgsPriceFetcher{
				FetcherName: fetcherName,
				ResponseGetter: &mock.HttpResponseGetterStub{
					GetCalled: getFuncGetCalled(fetcherName, "0.43000000", pair, nil),
				},
			}
			fetcher, _ := NewPriceFetcher(args)
			assert.False(t, check.IfNil(fetcher))

			fetcher.AddPair(namTicker, quoteUSDFiat)
			price, err := fetcher.FetchPrice(context.Background(), namTicker, quoteUSDFiat)
			require.Nil(t, err)
			require.Equal(t, 0.43, price)
			assert.Equal(t, fetcherName, fetcher.Name())
		})
	}
}

func TestBinance_URLTranslatesUSDQuote(t *testing.T) {
	t.Parallel()

	requestedURL := ""
	args := ArgsPriceFetcher{
		FetcherName: BinanceName,
		ResponseGetter: &mock.HttpResponseGetterStub{
			GetCalled: func(ctx context.Context, url string, response interface{}) error {
				requestedURL = url
				cast, _ := response.(*binancePriceRequest)
				cast.Price = "0.43"
				return nil
			},
		},
	}
	fetcher, _ := NewPriceFetcher(args)
	fetcher.AddPair("NAM", "USD")

	_, err := fetcher.FetchPrice(context.Background(), "NAM", "USD")
	require.Nil(t, err)
	assert.True(t, strings.HasSuffix(requestedURL, "symbol=NAMUSDT"))
}

func TestCoingecko_URLUsesAssetIDs(t *testing.T) {
	t.Parallel()

	requestedURL := ""
	args := ArgsPriceFetcher{
		FetcherName: CoingeckoName,
		ResponseGetter: &mock.HttpResponseGetterStub{
			GetCalled: func(ctx context.Context, url string, response interface{}) error {
				requestedURL = url
				cast, _ := response.(*coingeckoPriceRequest)
				*cast = coingeckoPriceRequest{"namada": {"usd": 0.43}}
				return nil
			},
		},
	}
	fetcher, _ := NewPriceFetcher(args)
	fetcher.AddPair("NAM", "USD")

	price, err := fetcher.FetchPrice(context.Background(), "NAM", "USD")
	require.Nil(t, err)
	assert.Equal(t, 0.43, price)
	assert.True(t, strings.Contains(requestedURL, "ids=namada"))
	assert.True(t, strings.Contains(requestedURL, "vs_currencies=usd"))
}

func getFuncGetCalled(name, returnPrice, pair string, returnErr error) func(ctx context.Context, url string, response interface{}) error {
	switch name {
	case BinanceName:
		return func(ctx context.Context, url string, response interface{}) error {
			cast, _ := response.(*binancePriceRequest)
			cast.Price = returnPrice
			return returnErr
		}
	case KrakenName:
		return func(ctx context.Context, url string, response interface{}) error {
			cast, _ := response.(*krakenPriceRequest)
			cast.Result = map[string]krakenPricePair{
				pair: {[]string{returnPrice, ""}},
			}
			return returnErr
		}
	case CoingeckoName:
		return func(ctx context.Context, url string, response interface{}) error {
			cast, _ := response.(*coingeckoPriceRequest)
			parsed, _ := strconv.ParseFloat(returnPrice, 64)
			*cast = coingeckoPriceRequest{"namada": {"usd": parsed}}
			return returnErr
		}
	}

	return nil
}
