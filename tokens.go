package geckoterminal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// NetworkAddressesTokenPrice returns the current USD prices of multiple
// tokens on a network. At most 30 addresses are accepted by the API;
// larger lists are sent anyway after a warning. See TokenPrices for
// decoding the response into decimal values.
func (c *Client) NetworkAddressesTokenPrice(ctx context.Context, network string, addresses []string) (*Envelope, error) {
	c.checkAddresses(addresses)
	return c.get(ctx, fmt.Sprintf(tokenPriceEndpoint, network, joinAddresses(addresses)), nil)
}

// NetworkTokenPools returns the top pools for a token on a network.
//
// tokenAddress is a token contract address, e.g.
// "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48".
// Options: WithInclude (default base_token, quote_token, dex),
// WithPage (default 1).
func (c *Client) NetworkTokenPools(ctx context.Context, network, tokenAddress string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkTokenPoolsEndpoint, opts)

	params := url.Values{}
	setInclude(params, o.include)
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, fmt.Sprintf(networkTokenPoolsEndpoint, network, tokenAddress), params)
}

// NetworkToken returns a specific token on a network.
//
// Options: WithInclude (default top_pools).
func (c *Client) NetworkToken(ctx context.Context, network, address string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkTokenEndpoint, opts)

	params := url.Values{}
	setInclude(params, o.include)
	return c.get(ctx, fmt.Sprintf(networkTokenEndpoint, network, address), params)
}

// NetworkTokensMultiAddress returns multiple tokens on a network, looked
// up by address in one call. At most 30 addresses are accepted by the
// API; larger lists are sent anyway after a warning.
//
// Options: WithInclude (default top_pools).
func (c *Client) NetworkTokensMultiAddress(ctx context.Context, network string, addresses []string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkTokensMultiEndpoint, opts)
	c.checkAddresses(addresses)

	params := url.Values{}
	setInclude(params, o.include)
	return c.get(ctx, fmt.Sprintf(networkTokensMultiEndpoint, network, joinAddresses(addresses)), params)
}

// NetworkTokenInfo returns the metadata (name, image, websites, socials,
// description) of a token on a network.
func (c *Client) NetworkTokenInfo(ctx context.Context, network, address string) (*Envelope, error) {
	return c.get(ctx, fmt.Sprintf(networkTokenInfoEndpoint, network, address), nil)
}

// TokenInfoRecentlyUpdated returns the most recently updated token
// metadata across all networks.
//
// Options: WithInclude (default network).
func (c *Client) TokenInfoRecentlyUpdated(ctx context.Context, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(recentTokenInfoEndpoint, opts)

	params := url.Values{}
	setInclude(params, o.include)
	return c.get(ctx, recentTokenInfoEndpoint, params)
}
