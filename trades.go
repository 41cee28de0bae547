package geckoterminal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// NetworkPoolTrades returns the last trades of a pool on a network within
// the past 24 hours.
//
// Options: WithMinTradeVolumeUSD (unset by default, returning all trades).
func (c *Client) NetworkPoolTrades(ctx context.Context, network, poolAddress string, opts ...RequestOption) (*Envelope, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	params := url.Values{}
	if o.minTradeVolumeUSDSet {
		params.Set("trade_volume_in_usd_greater_than", strconv.FormatFloat(o.minTradeVolumeUSD, 'f', -1, 64))
	}
	return c.get(ctx, fmt.Sprintf(poolTradesEndpoint, network, poolAddress), params)
}
