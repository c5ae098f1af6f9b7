package workshop

import (
	"context"
	"strings"
)

// MaxPlayerSummaryIDs is the number of steam IDs GetPlayerSummaries accepts per call.
const MaxPlayerSummaryIDs = 100

var playerSummariesEndpoint = Endpoint{Interface: "ISteamUser", Method: "GetPlayerSummaries", Version: 2}

// GetPlayerSummaries fetches profile summaries for steamIDs, splitting the list into
// calls of at most MaxPlayerSummaryIDs. Chunks are fetched sequentially and results
// keep the chunk order; any failing chunk fails the whole call.
func (c *Client) GetPlayerSummaries(ctx context.Context, steamIDs []string) ([]Player, error) {
	apiKey, err := c.requireAPIKey("GetPlayerSummaries")
	if err != nil {
		return nil, err
	}

	return batchedFetch(ctx, c.logger, steamIDs, MaxPlayerSummaryIDs, func(ctx context.Context, chunk []string) ([]Player, error) {
		return c.fetchPlayerSummaries(ctx, apiKey, chunk)
	})
}

func (c *Client) fetchPlayerSummaries(ctx context.Context, apiKey string, steamIDs []string) ([]Player, error) {
	var params Params
	params.Add("key", apiKey)
	params.Add("steamids", strings.Join(steamIDs, ","))

	body, err := c.send(ctx, request{
		endpoint:  playerSummariesEndpoint,
		method:    MethodGet,
		transport: Direct,
		params:    params,
	})
	if err != nil {
		return nil, err
	}

	list, err := unwrapDirect[playerList](playerSummariesEndpoint, body)
	if err != nil {
		return nil, err
	}
	return list.Players, nil
}

// GetPlayerNames maps each steam ID to its persona name.
func (c *Client) GetPlayerNames(ctx context.Context, steamIDs []string) (map[string]string, error) {
	players, err := c.GetPlayerSummaries(ctx, steamIDs)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.SteamID] = p.PersonaName
	}
	return names, nil
}
