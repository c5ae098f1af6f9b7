package workshop

import (
	"context"
	"strconv"
)

var queryFilesEndpoint = Endpoint{Interface: "IPublishedFileService", Method: "QueryFiles", Version: 1}

// SearchOptions describes a single-page Workshop text search.
type SearchOptions struct {
	AppID uint64
	Query string
	// Count is sent as numperpage.
	Count int
	// Page defaults to 1.
	Page int
}

func (o SearchOptions) params(apiKey string, withMetadata bool) Params {
	page := o.Page
	if page < 1 {
		page = 1
	}

	var p Params
	p.Add("page", strconv.Itoa(page))
	p.Add("numperpage", strconv.Itoa(o.Count))
	p.Add("search_text", o.Query)
	p.Add("appid", strconv.FormatUint(o.AppID, 10))
	if withMetadata {
		p.Add("return_metadata", "1")
	}
	p.Add("key", apiKey)
	return p
}

// SearchIDs searches Workshop items and returns only their file IDs.
// An empty result set yields an empty slice.
func (c *Client) SearchIDs(ctx context.Context, opts SearchOptions, transport Transport) ([]string, error) {
	apiKey, err := c.requireAPIKey("SearchIDs")
	if err != nil {
		return nil, err
	}

	body, err := c.QueryFiles(ctx, opts.params(apiKey, false), transport)
	if err != nil {
		return nil, err
	}

	list, ok, err := unwrapOptional[contentItemList](queryFilesEndpoint, body)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	ids := make([]string, 0, len(list.PublishedFileDetails))
	for _, item := range list.PublishedFileDetails {
		ids = append(ids, item.PublishedFileID)
	}
	return ids, nil
}

// SearchFull searches Workshop items and returns full metadata.
// An empty result set yields an empty slice.
func (c *Client) SearchFull(ctx context.Context, opts SearchOptions, transport Transport) ([]ContentItem, error) {
	apiKey, err := c.requireAPIKey("SearchFull")
	if err != nil {
		return nil, err
	}

	body, err := c.QueryFiles(ctx, opts.params(apiKey, true), transport)
	if err != nil {
		return nil, err
	}

	list, ok, err := unwrapOptional[contentItemList](queryFilesEndpoint, body)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []ContentItem{}, nil
	}
	return list.PublishedFileDetails, nil
}

// QueryFiles sends raw parameters to IPublishedFileService/QueryFiles and returns
// the response body untouched. The body is returned regardless of HTTP status.
func (c *Client) QueryFiles(ctx context.Context, params Params, transport Transport) ([]byte, error) {
	return c.send(ctx, request{
		endpoint:  queryFilesEndpoint,
		method:    MethodGet,
		transport: transport,
		params:    params,
	})
}
