package workshop

import (
	"context"
	"strconv"
)

var (
	publishedFileDetailsEndpoint = Endpoint{Interface: "ISteamRemoteStorage", Method: "GetPublishedFileDetails", Version: 1}
	collectionDetailsEndpoint    = Endpoint{Interface: "ISteamRemoteStorage", Method: "GetCollectionDetails", Version: 1}
)

// GetPublishedFileDetails fetches the latest metadata for each file ID in a single call.
// Results are returned in the order the API reports them, which matches the request order.
func (c *Client) GetPublishedFileDetails(ctx context.Context, fileIDs []string) ([]ContentItem, error) {
	if len(fileIDs) == 0 {
		return []ContentItem{}, nil
	}

	var params Params
	params.Add("itemcount", strconv.Itoa(len(fileIDs)))
	params.AddIndexed("publishedfileids", fileIDs)

	body, err := c.send(ctx, request{
		endpoint:  publishedFileDetailsEndpoint,
		method:    MethodPost,
		transport: Direct,
		params:    params,
	})
	if err != nil {
		return nil, err
	}

	list, err := unwrapDirect[contentItemList](publishedFileDetailsEndpoint, body)
	if err != nil {
		return nil, err
	}
	return list.PublishedFileDetails, nil
}

// GetCollectionDetails returns the members of a collection. A collection with no
// results yields an empty slice.
func (c *Client) GetCollectionDetails(ctx context.Context, fileID string) ([]CollectionChild, error) {
	var params Params
	params.Add("collectioncount", "1")
	params.AddIndexed("publishedfileids", []string{fileID})

	body, err := c.send(ctx, request{
		endpoint:  collectionDetailsEndpoint,
		method:    MethodPost,
		transport: Direct,
		params:    params,
	})
	if err != nil {
		return nil, err
	}

	return unwrapCounted(collectionDetailsEndpoint, body)
}

// GetCollectionChildren returns the file IDs of a collection's members, ready to be
// passed to GetPublishedFileDetails.
func (c *Client) GetCollectionChildren(ctx context.Context, fileID string) ([]string, error) {
	children, err := c.GetCollectionDetails(ctx, fileID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.PublishedFileID)
	}
	return ids, nil
}

// GetCollectionItems resolves a collection into the full metadata of its members.
func (c *Client) GetCollectionItems(ctx context.Context, fileID string) ([]ContentItem, error) {
	ids, err := c.GetCollectionChildren(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ContentItem{}, nil
	}

	c.logger.Debug().
		Str("collection", fileID).
		Int("children", len(ids)).
		Msg("Resolving collection members")

	return c.GetPublishedFileDetails(ctx, ids)
}
