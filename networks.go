package geckoterminal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Networks returns the list of supported networks.
//
// Options: WithPage (default 1).
func (c *Client) Networks(ctx context.Context, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networksEndpoint, opts)

	params := url.Values{}
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, networksEndpoint, params)
}

// NetworkDexes returns the list of supported dexes on a network.
//
// network is a network id from Networks, e.g. "eth".
// Options: WithPage (default 1).
func (c *Client) NetworkDexes(ctx context.Context, network string, opts ...RequestOption) (*Envelope, error) {
	o := newRequestOptions(networkDexesEndpoint, opts)

	params := url.Values{}
	params.Set("page", strconv.Itoa(o.page))
	return c.get(ctx, fmt.Sprintf(networkDexesEndpoint, network), params)
}
