package workshop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Method is the HTTP method an endpoint is documented to accept.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// Transport selects where a request is sent.
type Transport int

const (
	// Direct sends the request to the API host.
	Direct Transport = iota
	// Proxied sends the parameters to the caller-configured relay via GET.
	Proxied
)

func (t Transport) String() string {
	switch t {
	case Direct:
		return "direct"
	case Proxied:
		return "proxied"
	default:
		return "unknown"
	}
}

// TransportFor maps a use-proxy flag to a Transport.
func TransportFor(useProxy bool) Transport {
	if useProxy {
		return Proxied
	}
	return Direct
}

// Endpoint identifies an interface/method/version triple, e.g. ISteamUser/GetPlayerSummaries/v2.
type Endpoint struct {
	Interface string
	Method    string
	Version   int
}

// Path returns the endpoint path relative to the API host, with a trailing slash.
func (e Endpoint) Path() string {
	return fmt.Sprintf("/%s/%s/v%d/", e.Interface, e.Method, e.Version)
}

func (e Endpoint) String() string {
	return e.Interface + "/" + e.Method
}

// Param is a single key/value request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Encode preserves insertion order.
type Params []Param

// Add appends a parameter.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// AddIndexed appends values as name[0]=v0, name[1]=v1, ...
func (p *Params) AddIndexed(name string, values []string) {
	for i, v := range values {
		p.Add(name+"["+strconv.Itoa(i)+"]", v)
	}
}

// Get returns the first value for key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Encode renders the parameters in URL-encoded form, in insertion order.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

// redacted renders the parameters with the API key masked, for logging.
func (p Params) redacted() string {
	masked := make(Params, len(p))
	for i, param := range p {
		if param.Key == "key" {
			param.Value = "REDACTED"
		}
		masked[i] = param
	}
	return masked.Encode()
}

// request describes a single call before it is addressed.
type request struct {
	endpoint  Endpoint
	method    Method
	transport Transport
	params    Params
}

// send addresses, issues and reads a request, returning the raw body.
//
// Direct POST requests fail on non-2xx status before the body is parsed. GET and proxied
// requests return the body regardless of status; the endpoint's envelope decides.
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	httpReq, err := c.build(ctx, r)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("endpoint", r.endpoint.String()).
		Str("method", httpReq.Method).
		Stringer("transport", r.transport).
		Str("params", r.params.redacted()).
		Msg("Making Steam API request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: httpReq.Method, URL: r.endpoint.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: httpReq.Method, URL: r.endpoint.String(), Err: fmt.Errorf("read response body: %w", err)}
	}

	if r.method == MethodPost && r.transport == Direct && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, &TransportError{
			Method:     httpReq.Method,
			URL:        r.endpoint.String(),
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
	}

	c.logger.Trace().
		Str("endpoint", r.endpoint.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Steam API response")

	return body, nil
}

// build produces the addressed *http.Request for r.
func (c *Client) build(ctx context.Context, r request) (*http.Request, error) {
	var (
		method = string(r.method)
		target string
		body   io.Reader
	)

	switch r.transport {
	case Direct:
		target = c.baseURL + r.endpoint.Path()
	case Proxied:
		proxyURL, ok := c.ProxyURL()
		if !ok {
			return nil, &ConfigError{Operation: r.endpoint.String(), Err: ErrMissingProxyURL}
		}
		target = proxyURL
		method = http.MethodGet
	default:
		return nil, &ConfigError{Operation: r.endpoint.String(), Err: fmt.Errorf("%w: unknown transport %d", ErrConfiguration, r.transport)}
	}

	encoded := r.params.Encode()
	if method == http.MethodPost {
		body = strings.NewReader(encoded)
	} else if encoded != "" {
		target = appendQuery(target, encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: r.endpoint.String(), Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("User-Agent", UserAgent)
	if len(r.params) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return req, nil
}

// appendQuery adds an encoded query to target, keeping any query the target already carries.
func appendQuery(target, encoded string) string {
	if strings.Contains(target, "?") {
		if strings.HasSuffix(target, "?") || strings.HasSuffix(target, "&") {
			return target + encoded
		}
		return target + "&" + encoded
	}
	return target + "?" + encoded
}
