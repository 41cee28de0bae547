// Package geckoterminal provides a typed client for the GeckoTerminal
// decentralized-exchange market-data REST API.
//
// The client exposes one method per API endpoint (networks, dexes, pools,
// tokens, trades, OHLCV candles) and funnels every call through a single
// request executor that applies version-negotiation headers, issues a GET,
// and maps the HTTP outcome to a decoded JSON:API envelope or an APIError.
// Response bodies are passed through verbatim; the client does not
// interpret their schema beyond the JSON:API envelope shape.
package geckoterminal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// GeckoTerminal public API base URL.
	defaultBaseURL = "https://api.geckoterminal.com/api/v2"

	// Request configuration
	requestTimeout = 30 * time.Second
	userAgent      = "go-geckoterminal/1.0"

	// Accept header media types for version negotiation
	acceptJSON          = "application/json"
	acceptVersionFormat = "application/json;version=%s"
)

// Client is a GeckoTerminal API client. Its configuration is fixed at
// construction; the underlying http.Client is created once and reused for
// every request. The zero value is not usable, construct with New.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	logger     *slog.Logger
	limiter    *rate.Limiter
}

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithAPIVersion pins every request to a specific GeckoTerminal API
// version, e.g. "20230302". When unset the latest version is served.
func WithAPIVersion(version string) ClientOption {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithBaseURL overrides the API base URL. Intended for testing against
// mock servers.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the default http.Client. The caller owns the
// client's timeout and transport configuration.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the structured logger used for request tracing and
// parameter warnings. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit enables a client-side rate limiter applied before each
// request. The public API allows 30 calls per minute on the free tier,
// i.e. WithRateLimit(rate.Every(2*time.Second), 1). Disabled by default:
// without it every call is issued immediately.
func WithRateLimit(limit rate.Limit, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// New creates a GeckoTerminal API client.
func New(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// acceptHeader computes the accept header from the configured API version.
// It is the only per-request header that varies between clients.
func (c *Client) acceptHeader() string {
	if c.apiVersion != "" {
		return fmt.Sprintf(acceptVersionFormat, c.apiVersion)
	}
	return acceptJSON
}

// get is the shared request executor. It issues a single GET for the
// endpoint path with the given query parameters and decodes the JSON:API
// envelope on status 200. Any other status yields an *APIError carrying
// the status code and raw body. Transport failures (DNS, refused
// connections, timeouts) propagate from the http.Client unwrapped. There
// is no retry: one failed attempt surfaces immediately.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*Envelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	requestURL, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, err
	}

	// Built by hand rather than via http.NewRequestWithContext: the URL
	// carries an opaque path and must not go through a parse round trip.
	req := (&http.Request{
		Method: http.MethodGet,
		URL:    requestURL,
		Header: make(http.Header),
	}).WithContext(ctx)
	req.Header.Set("accept", c.acceptHeader())
	req.Header.Set("User-Agent", userAgent)

	requestID := uuid.NewString()
	c.logger.Debug("issuing request",
		"request_id", requestID,
		"endpoint", endpoint,
		"query", params.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("request failed",
			"request_id", requestID,
			"status", resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	c.logger.Debug("request completed",
		"request_id", requestID,
		"status", resp.StatusCode)
	return &envelope, nil
}

// buildURL concatenates the base URL and endpoint path. The path is kept
// opaque so that multi-address segments, which embed a literal "%"
// separator required by the remote API, reach the wire unescaped.
func (c *Client) buildURL(endpoint string, params url.Values) (*url.URL, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", c.baseURL, err)
	}
	return &url.URL{
		Scheme:   base.Scheme,
		Host:     base.Host,
		Opaque:   base.Path + endpoint,
		RawQuery: params.Encode(),
	}, nil
}
