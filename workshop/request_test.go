package workshop

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEndpoint = Endpoint{Interface: "ITest", Method: "Echo", Version: 1}

func TestEndpointPath(t *testing.T) {
	assert.Equal(t, "/ISteamUser/GetPlayerSummaries/v2/", playerSummariesEndpoint.Path())
	assert.Equal(t, "/IPublishedFileService/QueryFiles/v1/", queryFilesEndpoint.Path())
	assert.Equal(t, "ISteamUser/GetPlayerSummaries", playerSummariesEndpoint.String())
}

func TestParamsAddIndexed(t *testing.T) {
	var p Params
	p.AddIndexed("publishedfileids", []string{"1", "2", "3"})

	require.Len(t, p, 3)
	assert.Equal(t, Params{
		{Key: "publishedfileids[0]", Value: "1"},
		{Key: "publishedfileids[1]", Value: "2"},
		{Key: "publishedfileids[2]", Value: "3"},
	}, p)
	assert.Equal(t, "publishedfileids%5B0%5D=1&publishedfileids%5B1%5D=2&publishedfileids%5B2%5D=3", p.Encode())
}

func TestParamsEncodeKeepsInsertionOrder(t *testing.T) {
	ids := make([]string, 12)
	for i := range ids {
		ids[i] = strconv.Itoa(100 + i)
	}

	var p Params
	p.AddIndexed("publishedfileids", ids)

	// url.Values would sort "[10]" before "[2]"; the index order must survive encoding.
	for i, param := range p {
		assert.Equal(t, "publishedfileids["+strconv.Itoa(i)+"]", param.Key)
		assert.Equal(t, ids[i], param.Value)
	}

	v, ok := p.Get("publishedfileids[11]")
	assert.True(t, ok)
	assert.Equal(t, "111", v)

	_, ok = p.Get("missing")
	assert.False(t, ok)
}

func TestParamsRedacted(t *testing.T) {
	var p Params
	p.Add("key", "secret")
	p.Add("steamids", "1,2")
	assert.Equal(t, "key=REDACTED&steamids=1%2C2", p.redacted())
}

func TestSendDirectGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ITest/Echo/v1/", r.URL.Path)
		assert.Equal(t, "a=1&b=two+words", r.URL.RawQuery)
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, transport := newTestClient(t, server)

	var p Params
	p.Add("a", "1")
	p.Add("b", "two words")

	body, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodGet, transport: Direct, params: p})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, 1, transport.count())
}

func TestSendDirectPostEncodesForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "itemcount=1&publishedfileids%5B0%5D=42", string(raw))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)

	var p Params
	p.Add("itemcount", "1")
	p.AddIndexed("publishedfileids", []string{"42"})

	_, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodPost, transport: Direct, params: p})
	require.NoError(t, err)
}

func TestSendNoParamsOmitsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	_, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodGet, transport: Direct})
	require.NoError(t, err)
}

func TestSendStatusHandling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<html>Forbidden</html>`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)

	t.Run("post fails on non-2xx", func(t *testing.T) {
		_, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodPost, transport: Direct})
		require.Error(t, err)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusForbidden, transportErr.StatusCode)
		assert.Equal(t, "<html>Forbidden</html>", transportErr.Body)
		assert.True(t, transportErr.IsUnauthorized())
	})

	t.Run("get returns body regardless of status", func(t *testing.T) {
		body, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodGet, transport: Direct})
		require.NoError(t, err)
		assert.Equal(t, "<html>Forbidden</html>", string(body))
	})
}

func TestSendProxied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/relay.php", r.URL.Path)
		assert.Equal(t, "game=l4d2&q=tank", r.URL.RawQuery)
		_, _ = w.Write([]byte(`relayed`))
	}))
	defer server.Close()

	client, transport := newTestClient(t, server, WithProxyURL(server.URL+"/relay.php?game=l4d2"))

	var p Params
	p.Add("q", "tank")

	// Proxied requests are always GET, even for endpoints documented as POST.
	body, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodPost, transport: Proxied, params: p})
	require.NoError(t, err)
	assert.Equal(t, "relayed", string(body))
	assert.Equal(t, 1, transport.count())
}

func TestSendProxiedWithoutProxyURL(t *testing.T) {
	transport := &countingTransport{}
	client := NewClient(&http.Client{Transport: transport})

	_, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodGet, transport: Proxied})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingProxyURL)
	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, 0, transport.count())
}

func TestSendNetworkFailure(t *testing.T) {
	transport := &countingTransport{}
	client := NewClient(&http.Client{Transport: transport})

	_, err := client.send(context.Background(), request{endpoint: testEndpoint, method: MethodGet, transport: Direct})
	require.Error(t, err)
	assert.True(t, IsTransportError(err))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.StatusCode)
	assert.Equal(t, 1, transport.count())
}

func TestTransportFor(t *testing.T) {
	assert.Equal(t, Proxied, TransportFor(true))
	assert.Equal(t, Direct, TransportFor(false))
	assert.Equal(t, "proxied", Proxied.String())
	assert.Equal(t, "direct", Direct.String())
}
