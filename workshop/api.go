package workshop

import (
	"context"
)

// API defines the Workshop operations offered by Client
type API interface {
	// SearchIDs searches items and returns their file IDs
	SearchIDs(ctx context.Context, opts SearchOptions, transport Transport) ([]string, error)

	// SearchFull searches items and returns full metadata
	SearchFull(ctx context.Context, opts SearchOptions, transport Transport) ([]ContentItem, error)

	// GetPublishedFileDetails fetches metadata for a list of file IDs
	GetPublishedFileDetails(ctx context.Context, fileIDs []string) ([]ContentItem, error)

	// GetCollectionDetails lists the members of a collection
	GetCollectionDetails(ctx context.Context, fileID string) ([]CollectionChild, error)

	// GetCollectionItems resolves a collection into its members' metadata
	GetCollectionItems(ctx context.Context, fileID string) ([]ContentItem, error)

	// GetPlayerSummaries fetches profile summaries for steam IDs
	GetPlayerSummaries(ctx context.Context, steamIDs []string) ([]Player, error)

	// GetPlayerNames maps steam IDs to persona names
	GetPlayerNames(ctx context.Context, steamIDs []string) (map[string]string, error)
}

var _ API = (*Client)(nil)
