package esi

import (
	"log/slog"
	"net/http"
	"time"
)

// Default client settings.
const (
	DefaultBaseURL    = "https://esi.evetech.net/latest"
	DefaultDatasource = "tranquility"
	DefaultUserAgent  = "evemargin (github.com/industrialist/evemargin)"
)

// Client provides access to the ESI market endpoints for one region.
type Client struct {
	baseURL    string
	regionID   int32
	datasource string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger

	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates an ESI client scoped to one region.
func NewClient(regionID int32, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		regionID:   regionID,
		datasource: DefaultDatasource,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		maxRetries:   3,
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL overrides the ESI endpoint (demo/test servers).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithDatasource sets the ESI datasource parameter.
func WithDatasource(ds string) ClientOption {
	return func(c *Client) {
		c.datasource = ds
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
