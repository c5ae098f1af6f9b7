package workshop

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes returned by the client. Use errors.Is to classify.
var (
	// ErrConfiguration indicates the client is missing configuration required by the call.
	ErrConfiguration = errors.New("workshop: configuration error")
	// ErrTransport indicates the request could not be completed or returned a failing status.
	ErrTransport = errors.New("workshop: transport error")
	// ErrParse indicates the response body did not match the expected shape.
	ErrParse = errors.New("workshop: parse error")
)

// Configuration errors
var (
	// ErrMissingAPIKey is returned by authenticated endpoints when no API key is set
	ErrMissingAPIKey = fmt.Errorf("%w: missing api key", ErrConfiguration)
	// ErrMissingProxyURL is returned when proxied transport is requested without a proxy URL
	ErrMissingProxyURL = fmt.Errorf("%w: missing proxy url", ErrConfiguration)
)

// ConfigError reports a configuration problem detected before any network call.
type ConfigError struct {
	Operation string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e.Err == nil {
		return ErrConfiguration
	}
	return e.Err
}

// TransportError reports a network failure or, when StatusCode is set, a non-2xx response.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("workshop: %s %s returned status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("workshop: %s %s failed: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes both the transport class and the underlying network error.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// IsUnauthorized checks if the error indicates a rejected API key
func (e *TransportError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound checks if the error indicates a not found response
func (e *TransportError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ParseError reports a response body that could not be decoded into the endpoint's envelope.
type ParseError struct {
	Endpoint string
	Body     string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("workshop: failed to parse %s response: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// IsConfigurationError reports whether err is a configuration error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsTransportError reports whether err is a transport error.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsParseError reports whether err is a parse error.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// truncateBody keeps error payloads readable when a server returns an HTML page.
func truncateBody(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
