package geckoterminal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// TrendingPools returns trending pools across all networks.
//
// Options: WithInclude (default base_token, quote_token, dex, network),
// WithPage (default 1, maximum 10).
func (c *Client) TrendingPools(ctx context.Context, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(trendingPoolsEndpoint, opts)
	c.checkPage(o.page)

	params := url.Values{}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, trendingPoolsEndpoint, params)
}

// NetworkTrendingPools returns trending pools on a network.
//
// network is a network id from Networks, e.g. "eth".
// Options: WithInclude (default base_token, quote_token, dex),
// WithPage (default 1, maximum 10).
func (c *Client) NetworkTrendingPools(ctx context.Context, network string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkTrendingPoolsEndpoint, opts)
	c.checkPage(o.page)

	params := url.Values{}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, fmt.Sprintf(networkTrendingPoolsEndpoint, network), params)
}

// NetworkPoolAddress returns a specific pool on a network.
//
// address is a pool address, e.g.
// "0x60594a405d53811d3bc4766596efd80fd545a270".
// Options: WithInclude (default base_token, quote_token, dex).
func (c *Client) NetworkPoolAddress(ctx context.Context, network, address string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkPoolEndpoint, opts)

	params := url.Values{}
	setInclude(params, o.include)
	return c.get(ctx, fmt.Sprintf(networkPoolEndpoint, network, address), params)
}

// NetworkPoolsMultiAddress returns multiple pools on a network, looked up
// by address in one call. The response additionally carries the included
// related resources. At most 30 addresses are accepted by the API; larger
// lists are sent anyway after a warning.
//
// Options: WithInclude (default base_token, quote_token, dex).
func (c *Client) NetworkPoolsMultiAddress(ctx context.Context, network string, addresses []string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkPoolsMultiEndpoint, opts)
	c.checkAddresses(addresses)

	params := url.Values{}
	setInclude(params, o.include)
	return c.get(ctx, fmt.Sprintf(networkPoolsMultiEndpoint, network, joinAddresses(addresses)), params)
}

// NetworkPools returns the top pools on a network.
//
// Options: WithInclude (default base_token, quote_token, dex),
// WithPage (default 1).
func (c *Client) NetworkPools(ctx context.Context, network string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkPoolsEndpoint, opts)

	params := url.Values{}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, fmt.Sprintf(networkPoolsEndpoint, network), params)
}

// NetworkDexPools returns the top pools on a network's dex.
//
// dex is a dex id from NetworkDexes, e.g. "sushiswap".
// Options: WithInclude (default base_token, quote_token, dex),
// WithPage (default 1).
func (c *Client) NetworkDexPools(ctx context.Context, network, dex string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkDexPoolsEndpoint, opts)

	params := url.Values{}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, fmt.Sprintf(networkDexPoolsEndpoint, network, dex), params)
}

// NetworkNewPools returns the newest pools on a network.
//
// Options: WithInclude (default base_token, quote_token, dex),
// WithPage (default 1, maximum 10).
func (c *Client) NetworkNewPools(ctx context.Context, network string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkNewPoolsEndpoint, opts)
	c.checkPage(o.page)

	params := url.Values{}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, fmt.Sprintf(networkNewPoolsEndpoint, network), params)
}

// NewPools returns the newest pools across all networks.
//
// Options: WithInclude (default base_token, quote_token, dex, network),
// WithPage (default 1, maximum 10).
func (c *Client) NewPools(ctx context.Context, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(newPoolsEndpoint, opts)
	c.checkPage(o.page)

	params := url.Values{}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, newPoolsEndpoint, params)
}

// SearchNetworkPools searches for pools. query can be a pool address, a
// token address, or a token symbol such as "ETH".
//
// Options: WithNetwork (unset by default, searching all networks),
// WithInclude (default base_token, quote_token, dex),
// WithPage (default 1, maximum 10).
func (c *Client) SearchNetworkPools(ctx context.Context, query string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(searchPoolsEndpoint, opts)
	c.checkPage(o.page)

	params := url.Values{}
	params.Set("query", query)
	if o.network != "" {
		params.Set("network", o.network)
	}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, searchPoolsEndpoint, params)
}

// setInclude serializes the include list, joined with commas in the
// caller-supplied order. An empty list is not serialized.
func setInclude(params url.Values, include []string) {
	if len(include) > 0 {
		params.Set("include", strings.Join(include, ","))
	}
}
