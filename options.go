package geckoterminal

import "time"

// requestOptions holds the optional parameters of a single call after
// defaults and caller overrides are applied. Zero/unset values are never
// serialized into the query string.
type requestOptions struct {
	page    int
	include []string
	network string

	// OHLCV parameters
	aggregate       int
	beforeTimestamp int64
	limit           int
	currency        string
	token           string

	// Trades parameters
	minTradeVolumeUSD    float64
	minTradeVolumeUSDSet bool
}

// RequestOption overrides an optional parameter for a single call.
// Each endpoint method documents the options it honors; options that do
// not apply to an endpoint are ignored.
type RequestOption func(*requestOptions)

// WithPage selects the result page. Defaults to 1. The API serves at most
// 10 pages; larger values are sent anyway after a warning.
func WithPage(page int) RequestOption {
	return func(o *requestOptions) {
		o.page = page
	}
}

// WithInclude replaces the default set of related resources embedded in
// the response, joined in the given order. Passing no names drops the
// include parameter entirely.
func WithInclude(include ...string) RequestOption {
	return func(o *requestOptions) {
		o.include = include
	}
}

// WithNetwork restricts a pool search to one network, e.g. "eth".
// Unset by default, meaning all networks are searched.
func WithNetwork(network string) RequestOption {
	return func(o *requestOptions) {
		o.network = network
	}
}

// WithAggregate sets the OHLCV aggregation window in timeframe units.
// Defaults to 1. The API accepts 1 for day, 1/4/12 for hour and 1/5/15
// for minute timeframes.
func WithAggregate(aggregate int) RequestOption {
	return func(o *requestOptions) {
		o.aggregate = aggregate
	}
}

// WithBeforeTimestamp returns OHLCV candles strictly before the given
// time. Unset by default, meaning the most recent candles.
func WithBeforeTimestamp(t time.Time) RequestOption {
	return func(o *requestOptions) {
		o.beforeTimestamp = t.Unix()
	}
}

// WithOHLCVLimit caps the number of returned candles. Defaults to 100,
// the API maximum is 1000.
func WithOHLCVLimit(limit int) RequestOption {
	return func(o *requestOptions) {
		o.limit = limit
	}
}

// WithCurrency selects the OHLCV price denomination, "usd" or "token".
// Defaults to "usd".
func WithCurrency(currency string) RequestOption {
	return func(o *requestOptions) {
		o.currency = currency
	}
}

// WithToken selects which side of the pool OHLCV prices refer to:
// "base", "quote", or a token address. Defaults to "base".
func WithToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.token = token
	}
}

// WithMinTradeVolumeUSD filters pool trades below the given USD volume.
// Unset by default, meaning all trades.
func WithMinTradeVolumeUSD(volume float64) RequestOption {
	return func(o *requestOptions) {
		o.minTradeVolumeUSD = volume
		o.minTradeVolumeUSDSet = true
	}
}

// newRequestOptions seeds the defaults shared by the paged listing
// endpoints (page 1, endpoint-specific include set) and applies caller
// overrides on top.
func newRequestOptions(endpoint string, opts []RequestOption) requestOptions {
	o := requestOptions{
		page:    1,
		include: defaultIncludes[endpoint],
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
