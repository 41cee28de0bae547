package geckoterminal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Timeframe is the OHLCV candle resolution.
type Timeframe string

// Timeframes supported by the OHLCV endpoint.
const (
	TimeframeDay    Timeframe = "day"
	TimeframeHour   Timeframe = "hour"
	TimeframeMinute Timeframe = "minute"
)

// OHLCV endpoint defaults.
const (
	defaultOHLCVAggregate = 1
	defaultOHLCVLimit     = 100
	defaultOHLCVCurrency  = "usd"
	defaultOHLCVToken     = "base"
)

// NetworkPoolOHLCV returns OHLCV candles for a pool on a network. The
// candle list is carried in the resource attributes under "ohlcv_list".
//
// Options: WithAggregate (default 1), WithBeforeTimestamp (default unset,
// most recent candles), WithOHLCVLimit (default 100, maximum 1000),
// WithCurrency (default "usd"), WithToken (default "base").
func (c *Client) NetworkPoolOHLCV(ctx context.Context, network, poolAddress string, timeframe Timeframe, opts ...RequestOption) (*Envelope, error) {
	o := requestOptions{
		aggregate: defaultOHLCVAggregate,
		limit:     defaultOHLCVLimit,
		currency:  defaultOHLCVCurrency,
		token:     defaultOHLCVToken,
	}
	for _, opt := range opts {
		opt(&o)
	}

	params := url.Values{}
	params.Set("aggregate", strconv.Itoa(o.aggregate))
	if o.beforeTimestamp > 0 {
		params.Set("before_timestamp", strconv.FormatInt(o.beforeTimestamp, 10))
	}
	params.Set("limit", strconv.Itoa(o.limit))
	params.Set("currency", o.currency)
	params.Set("token", o.token)
	return c.get(ctx, fmt.Sprintf(poolOHLCVEndpoint, network, poolAddress, timeframe), params)
}
