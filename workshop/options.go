package workshop

import (
	"strings"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the Steam Web API key sent as the "key" parameter.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.SetAPIKey(apiKey)
	}
}

// WithProxyURL sets the relay endpoint used for proxied transport.
func WithProxyURL(proxyURL string) Option {
	return func(c *Client) {
		c.SetProxyURL(proxyURL)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBaseURL overrides the API host for direct calls, e.g. a mirror or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL = strings.TrimRight(baseURL, "/"); baseURL != "" {
			c.baseURL = baseURL
		}
	}
}
