package workshop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapDirect(t *testing.T) {
	t.Run("payload present", func(t *testing.T) {
		list, err := unwrapDirect[playerList](playerSummariesEndpoint, []byte(`{"response":{"players":[{"steamid":"A","personaname":"Alice"}]}}`))
		require.NoError(t, err)
		require.Len(t, list.Players, 1)
		assert.Equal(t, "Alice", list.Players[0].PersonaName)
	})

	t.Run("missing response", func(t *testing.T) {
		_, err := unwrapDirect[playerList](playerSummariesEndpoint, []byte(`{}`))
		require.Error(t, err)
		assert.True(t, IsParseError(err))
		assert.ErrorIs(t, err, errMissingResponse)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := unwrapDirect[playerList](playerSummariesEndpoint, []byte(`{"response":{"players":"nope"}}`))
		require.Error(t, err)
		assert.True(t, IsParseError(err))
	})
}

func TestUnwrapOptional(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantLen int
	}{
		{
			name:    "results present",
			body:    `{"response":{"publishedfiledetails":[{"result":1,"publishedfileid":"1"},{"result":1,"publishedfileid":"2"}]},"total":2}`,
			wantOK:  true,
			wantLen: 2,
		},
		{
			name:   "zero total with response present",
			body:   `{"response":{"publishedfiledetails":[{"result":1,"publishedfileid":"1"}]},"total":0}`,
			wantOK: false,
		},
		{
			name:   "response absent",
			body:   `{"total":5}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, ok, err := unwrapOptional[contentItemList](queryFilesEndpoint, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Len(t, list.PublishedFileDetails, tt.wantLen)
			}
		})
	}
}

func TestUnwrapCounted(t *testing.T) {
	t.Run("children returned in order", func(t *testing.T) {
		body := `{"response":{"result":1,"resultcount":1,"collectiondetails":[{"publishedfileid":"900","result":1,"children":[
			{"publishedfileid":"11","sortorder":1,"filetype":0},
			{"publishedfileid":"12","sortorder":2,"filetype":0}]}]}}`

		children, err := unwrapCounted(collectionDetailsEndpoint, []byte(body))
		require.NoError(t, err)
		assert.Equal(t, []CollectionChild{
			{PublishedFileID: "11", SortOrder: 1},
			{PublishedFileID: "12", SortOrder: 2},
		}, children)
	})

	t.Run("zero resultcount", func(t *testing.T) {
		children, err := unwrapCounted(collectionDetailsEndpoint, []byte(`{"response":{"result":1,"resultcount":0}}`))
		require.NoError(t, err)
		assert.NotNil(t, children)
		assert.Empty(t, children)
	})

	t.Run("empty children", func(t *testing.T) {
		children, err := unwrapCounted(collectionDetailsEndpoint, []byte(`{"response":{"result":1,"resultcount":1,"collectiondetails":[{"publishedfileid":"5","result":1,"children":[]}]}}`))
		require.NoError(t, err)
		assert.NotNil(t, children)
		assert.Empty(t, children)
	})

	t.Run("count without details", func(t *testing.T) {
		_, err := unwrapCounted(collectionDetailsEndpoint, []byte(`{"response":{"result":1,"resultcount":1,"collectiondetails":[]}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, errMissingCollectionDetails)
	})

	t.Run("missing response", func(t *testing.T) {
		_, err := unwrapCounted(collectionDetailsEndpoint, []byte(`{"result":1}`))
		require.Error(t, err)
		assert.True(t, IsParseError(err))
	})
}

func TestUnwrapMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		unwrap func([]byte) error
		body   string
	}{
		{
			name:   "optional: empty object",
			unwrap: unwrapOptionalItems,
			body:   `{}`,
		},
		{
			name:   "optional: missing total",
			unwrap: unwrapOptionalItems,
			body:   `{"response":{"publishedfiledetails":[{"result":1,"publishedfileid":"1"}]}}`,
		},
		{
			name:   "optional: response without list",
			unwrap: unwrapOptionalItems,
			body:   `{"response":{},"total":1}`,
		},
		{
			name:   "optional: response without list and zero total",
			unwrap: unwrapOptionalItems,
			body:   `{"response":{},"total":0}`,
		},
		{
			name:   "optional: item without file id",
			unwrap: unwrapOptionalItems,
			body:   `{"response":{"publishedfiledetails":[{"result":1}]},"total":1}`,
		},
		{
			name:   "direct: item list missing",
			unwrap: unwrapDirectItems,
			body:   `{"response":{}}`,
		},
		{
			name:   "direct: item without result",
			unwrap: unwrapDirectItems,
			body:   `{"response":{"publishedfiledetails":[{"publishedfileid":"1"}]}}`,
		},
		{
			name:   "direct: player list missing",
			unwrap: unwrapDirectPlayers,
			body:   `{"response":{}}`,
		},
		{
			name:   "direct: null player list",
			unwrap: unwrapDirectPlayers,
			body:   `{"response":{"players":null}}`,
		},
		{
			name:   "direct: player without steamid",
			unwrap: unwrapDirectPlayers,
			body:   `{"response":{"players":[{"personaname":"Alice"}]}}`,
		},
		{
			name:   "counted: missing resultcount",
			unwrap: unwrapCountedChildren,
			body:   `{"response":{"result":1,"collectiondetails":[]}}`,
		},
		{
			name:   "counted: missing result",
			unwrap: unwrapCountedChildren,
			body:   `{"response":{"resultcount":0}}`,
		},
		{
			name:   "counted: collection without children",
			unwrap: unwrapCountedChildren,
			body:   `{"response":{"result":1,"resultcount":1,"collectiondetails":[{"publishedfileid":"5","result":9}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.unwrap([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, IsParseError(err), "got %v", err)
			assert.ErrorIs(t, err, errMissingField)
		})
	}
}

func unwrapOptionalItems(body []byte) error {
	_, _, err := unwrapOptional[contentItemList](queryFilesEndpoint, body)
	return err
}

func unwrapDirectItems(body []byte) error {
	_, err := unwrapDirect[contentItemList](publishedFileDetailsEndpoint, body)
	return err
}

func unwrapDirectPlayers(body []byte) error {
	_, err := unwrapDirect[playerList](playerSummariesEndpoint, body)
	return err
}

func unwrapCountedChildren(body []byte) error {
	_, err := unwrapCounted(collectionDetailsEndpoint, body)
	return err
}

func TestMalformedJSONIsParseError(t *testing.T) {
	bodies := []string{
		`{"response":`,
		`<html>Internal Server Error</html>`,
		``,
		`not json`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			_, err := unwrapDirect[playerList](playerSummariesEndpoint, []byte(body))
			assert.True(t, IsParseError(err), "direct: %v", err)

			_, ok, err := unwrapOptional[contentItemList](queryFilesEndpoint, []byte(body))
			assert.True(t, IsParseError(err), "optional: %v", err)
			assert.False(t, ok)

			children, err := unwrapCounted(collectionDetailsEndpoint, []byte(body))
			assert.True(t, IsParseError(err), "counted: %v", err)
			assert.Nil(t, children)
		})
	}
}

func TestParseErrorCarriesBody(t *testing.T) {
	_, err := unwrapDirect[playerList](playerSummariesEndpoint, []byte(`oops`))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "ISteamUser/GetPlayerSummaries", parseErr.Endpoint)
	assert.Equal(t, "oops", parseErr.Body)
}
