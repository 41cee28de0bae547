package geckoterminal

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageGuard(t *testing.T) {
	t.Run("warns above the maximum and sends the value unclamped", func(t *testing.T) {
		logger, buf := newBufferLogger()
		var captured capture
		server := newCaptureServer(t, http.StatusOK, networksBody, &captured)
		defer server.Close()

		c := New(WithBaseURL(server.URL), WithLogger(logger))
		_, err := c.TrendingPools(context.Background(), WithPage(11))
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "maximum 10 pages allowed, 11 provided")
		assert.Equal(t, "11", captured.query.Get("page"))
	})

	t.Run("silent at the maximum", func(t *testing.T) {
		logger, buf := newBufferLogger()
		var captured capture
		server := newCaptureServer(t, http.StatusOK, networksBody, &captured)
		defer server.Close()

		c := New(WithBaseURL(server.URL), WithLogger(logger))
		_, err := c.NewPools(context.Background(), WithPage(10))
		require.NoError(t, err)

		assert.NotContains(t, buf.String(), "pages allowed")
	})

	t.Run("covers every page-guarded method", func(t *testing.T) {
		calls := map[string]func(ctx context.Context, c *Client) (*Envelope, error){
			"trending pools": func(ctx context.Context, c *Client) (*Envelope, error) {
				return c.TrendingPools(ctx, WithPage(12))
			},
			"network trending pools": func(ctx context.Context, c *Client) (*Envelope, error) {
				return c.NetworkTrendingPools(ctx, "eth", WithPage(12))
			},
			"network new pools": func(ctx context.Context, c *Client) (*Envelope, error) {
				return c.NetworkNewPools(ctx, "eth", WithPage(12))
			},
			"new pools": func(ctx context.Context, c *Client) (*Envelope, error) {
				return c.NewPools(ctx, WithPage(12))
			},
			"search pools": func(ctx context.Context, c *Client) (*Envelope, error) {
				return c.SearchNetworkPools(ctx, "ETH", WithPage(12))
			},
		}

		for name, call := range calls {
			t.Run(name, func(t *testing.T) {
				logger, buf := newBufferLogger()
				var captured capture
				server := newCaptureServer(t, http.StatusOK, networksBody, &captured)
				defer server.Close()

				c := New(WithBaseURL(server.URL), WithLogger(logger))
				_, err := call(context.Background(), c)
				require.NoError(t, err)

				assert.Contains(t, buf.String(), "maximum 10 pages allowed, 12 provided")
			})
		}
	})

	t.Run("unguarded listing stays silent", func(t *testing.T) {
		logger, buf := newBufferLogger()
		var captured capture
		server := newCaptureServer(t, http.StatusOK, networksBody, &captured)
		defer server.Close()

		c := New(WithBaseURL(server.URL), WithLogger(logger))
		_, err := c.Networks(context.Background(), WithPage(99))
		require.NoError(t, err)

		assert.NotContains(t, buf.String(), "pages allowed")
		assert.Equal(t, "99", captured.query.Get("page"))
	})
}

func TestAddressGuard(t *testing.T) {
	manyAddresses := make([]string, 31)
	for i := range manyAddresses {
		manyAddresses[i] = fmt.Sprintf("0x%040d", i)
	}

	t.Run("warns above the maximum and sends the full list in order", func(t *testing.T) {
		logger, buf := newBufferLogger()
		transport := &captureTransport{status: http.StatusOK, body: poolBody}
		c := New(WithHTTPClient(&http.Client{Transport: transport}), WithLogger(logger))

		_, err := c.NetworkAddressesTokenPrice(context.Background(), "eth", manyAddresses)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "maximum 30 addresses allowed, 31 provided")
		assert.Equal(t,
			"/api/v2/simple/networks/eth/token_price/"+strings.Join(manyAddresses, "%"),
			transport.lastRequest.URL.RequestURI())
	})

	t.Run("warns on pool and token multi lookups", func(t *testing.T) {
		for name, call := range map[string]func(ctx context.Context, c *Client, addresses []string) (*Envelope, error){
			"pools multi": func(ctx context.Context, c *Client, addresses []string) (*Envelope, error) {
				return c.NetworkPoolsMultiAddress(ctx, "eth", addresses)
			},
			"tokens multi": func(ctx context.Context, c *Client, addresses []string) (*Envelope, error) {
				return c.NetworkTokensMultiAddress(ctx, "eth", addresses)
			},
		} {
			t.Run(name, func(t *testing.T) {
				logger, buf := newBufferLogger()
				transport := &captureTransport{status: http.StatusOK, body: poolBody}
				c := New(WithHTTPClient(&http.Client{Transport: transport}), WithLogger(logger))

				_, err := call(context.Background(), c, manyAddresses)
				require.NoError(t, err)

				assert.Contains(t, buf.String(), "maximum 30 addresses allowed, 31 provided")
			})
		}
	})

	t.Run("silent at the maximum", func(t *testing.T) {
		logger, buf := newBufferLogger()
		transport := &captureTransport{status: http.StatusOK, body: poolBody}
		c := New(WithHTTPClient(&http.Client{Transport: transport}), WithLogger(logger))

		_, err := c.NetworkAddressesTokenPrice(context.Background(), "eth", manyAddresses[:30])
		require.NoError(t, err)

		assert.NotContains(t, buf.String(), "addresses allowed")
	})
}
