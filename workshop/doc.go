// Package workshop provides a client for the Steam Workshop subset of the Steam Web API.
//
// Requests go either directly to the API host or, for endpoints that support it,
// through a caller-operated relay that holds the API key on the caller's behalf.
//
// # Usage
//
// Endpoints that need no authentication work on a bare client:
//
//	client := workshop.NewClient(nil)
//	items, err := client.GetPublishedFileDetails(ctx, []string{"123456"})
//
// Authenticated endpoints need an API key:
//
//	client := workshop.NewClient(nil, workshop.WithAPIKey("MY_API_KEY"))
//	ids, err := client.SearchIDs(ctx, workshop.SearchOptions{AppID: 550, Query: "tank", Count: 10}, workshop.Direct)
//
// Proxied calls send the same parameters to the relay via GET:
//
//	client.SetProxyURL("https://example.com/search_public.php")
//	ids, err := client.SearchIDs(ctx, opts, workshop.Proxied)
//
// # Response envelopes
//
// Steam wraps results differently per interface. Empty result sets (an absent
// response, a zero total or a zero resultcount) are returned as empty slices, never
// as errors. Bodies that do not decode are returned as *ParseError.
//
// # Status handling
//
// POST endpoints (ISteamRemoteStorage) fail with *TransportError on a non-2xx status
// before the body is read. GET endpoints return the body regardless of status and rely
// on the envelope to surface failures.
//
// # Error Handling
//
//   - ErrConfiguration: missing API key or proxy URL, detected before any network call
//   - ErrTransport: network failure or non-2xx status on status-checked endpoints
//   - ErrParse: body does not match the endpoint's envelope
//
// Use errors.Is, or errors.As with *ConfigError, *TransportError and *ParseError.
package workshop
