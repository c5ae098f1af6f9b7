package workshop

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Client is the session handle for the Steam Web API.
//
// It holds the optional API key, the optional proxy URL and the HTTP client shared by
// every call. The key and proxy may be changed between calls; Client adds no locking,
// so concurrent mutation while requests are in flight is the caller's responsibility.
type Client struct {
	apiKey     *string
	proxyURL   *string
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a new client. A default http.Client is used when httpClient is nil.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIKey returns the configured API key and whether one is set.
func (c *Client) APIKey() (string, bool) {
	if c.apiKey == nil {
		return "", false
	}
	return *c.apiKey, true
}

// SetAPIKey sets the API key. An empty key clears it.
func (c *Client) SetAPIKey(apiKey string) {
	if apiKey == "" {
		c.apiKey = nil
		return
	}
	c.apiKey = &apiKey
}

// ClearAPIKey removes the API key.
func (c *Client) ClearAPIKey() {
	c.apiKey = nil
}

// ProxyURL returns the configured proxy URL and whether one is set.
func (c *Client) ProxyURL() (string, bool) {
	if c.proxyURL == nil {
		return "", false
	}
	return *c.proxyURL, true
}

// SetProxyURL sets the proxy URL. An empty URL clears it.
func (c *Client) SetProxyURL(proxyURL string) {
	if proxyURL == "" {
		c.proxyURL = nil
		return
	}
	c.proxyURL = &proxyURL
}

// ClearProxyURL removes the proxy URL.
func (c *Client) ClearProxyURL() {
	c.proxyURL = nil
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// BaseURL returns the host used for direct calls.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// requireAPIKey fails fast for authenticated operations.
func (c *Client) requireAPIKey(operation string) (string, error) {
	key, ok := c.APIKey()
	if !ok {
		return "", &ConfigError{Operation: operation, Err: ErrMissingAPIKey}
	}
	return key, nil
}
