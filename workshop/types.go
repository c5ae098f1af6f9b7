package workshop

import (
	"encoding/json"
	"strings"
	"time"
)

// ContentItem is a published Workshop file as returned by the file detail and search endpoints.
// Every field except Result and PublishedFileID is optional in the API response.
type ContentItem struct {
	Result                int     `json:"result"`
	PublishedFileID       string  `json:"publishedfileid"`
	Creator               *string `json:"creator,omitempty"`
	CreatorAppID          *uint32 `json:"creator_app_id,omitempty"`
	ConsumerAppID         *uint32 `json:"consumer_app_id,omitempty"`
	Filename              *string `json:"filename,omitempty"`
	FileSize              *uint64 `json:"file_size,omitempty"`
	FileURL               *string `json:"file_url,omitempty"`
	HContentFile          *string `json:"hcontent_file,omitempty"`
	PreviewURL            *string `json:"preview_url,omitempty"`
	HContentPreview       *string `json:"hcontent_preview,omitempty"`
	Title                 *string `json:"title,omitempty"`
	Description           *string `json:"description,omitempty"`
	TimeCreated           *int64  `json:"time_created,omitempty"`
	TimeUpdated           *int64  `json:"time_updated,omitempty"`
	Visibility            *uint32 `json:"visibility,omitempty"`
	Banned                *uint32 `json:"banned,omitempty"`
	BanReason             *string `json:"ban_reason,omitempty"`
	Subscriptions         *uint32 `json:"subscriptions,omitempty"`
	Favorited             *uint32 `json:"favorited,omitempty"`
	LifetimeSubscriptions *uint32 `json:"lifetime_subscriptions,omitempty"`
	LifetimeFavorited     *uint32 `json:"lifetime_favorited,omitempty"`
	Views                 *uint32 `json:"views,omitempty"`
	Tags                  []Tag   `json:"tags,omitempty"`
}

// UnmarshalJSON rejects items without a result code or file ID.
func (c *ContentItem) UnmarshalJSON(data []byte) error {
	type plain ContentItem
	aux := struct {
		*plain
		Result          *int    `json:"result"`
		PublishedFileID *string `json:"publishedfileid"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Result == nil {
		return missingField("result")
	}
	if aux.PublishedFileID == nil {
		return missingField("publishedfileid")
	}
	c.Result = *aux.Result
	c.PublishedFileID = *aux.PublishedFileID
	return nil
}

// Tag is a single tag attached to a ContentItem
type Tag struct {
	Tag string `json:"tag"`
}

// CreatedAt returns the creation time, or the zero time when absent.
func (c *ContentItem) CreatedAt() time.Time {
	return unixTime(c.TimeCreated)
}

// UpdatedAt returns the last update time, or the zero time when absent.
func (c *ContentItem) UpdatedAt() time.Time {
	return unixTime(c.TimeUpdated)
}

// TagNames returns the tag values in response order.
func (c *ContentItem) TagNames() []string {
	names := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		names = append(names, t.Tag)
	}
	return names
}

// HasTag reports whether the item carries tag, ignoring case.
func (c *ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t.Tag, tag) {
			return true
		}
	}
	return false
}

// IsBanned reports whether the item is flagged as banned.
func (c *ContentItem) IsBanned() bool {
	return c.Banned != nil && *c.Banned != 0
}

// DisplayTitle returns the title, falling back to the file ID.
func (c *ContentItem) DisplayTitle() string {
	if c.Title != nil && *c.Title != "" {
		return *c.Title
	}
	return c.PublishedFileID
}

func unixTime(ts *int64) time.Time {
	if ts == nil || *ts == 0 {
		return time.Time{}
	}
	return time.Unix(*ts, 0)
}

// CollectionChild is a member of a collection item
type CollectionChild struct {
	PublishedFileID string `json:"publishedfileid"`
	SortOrder       int    `json:"sortorder"`
	FileType        int    `json:"filetype"`
}

// Player is a Steam user profile summary
type Player struct {
	SteamID                  string `json:"steamid"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	ProfileState             int    `json:"profilestate"`
	PersonaName              string `json:"personaname"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarmedium"`
	AvatarFull               string `json:"avatarfull"`
	AvatarHash               string `json:"avatarhash"`
	PersonaState             int    `json:"personastate"`
}

// UnmarshalJSON rejects summaries without a steam ID or persona name.
func (p *Player) UnmarshalJSON(data []byte) error {
	type plain Player
	aux := struct {
		*plain
		SteamID     *string `json:"steamid"`
		PersonaName *string `json:"personaname"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.SteamID == nil {
		return missingField("steamid")
	}
	if aux.PersonaName == nil {
		return missingField("personaname")
	}
	p.SteamID = *aux.SteamID
	p.PersonaName = *aux.PersonaName
	return nil
}

// contentItemList is the payload shape shared by QueryFiles and GetPublishedFileDetails.
type contentItemList struct {
	PublishedFileDetails []ContentItem `json:"publishedfiledetails"`
}

func (l *contentItemList) validate() error {
	if l.PublishedFileDetails == nil {
		return missingField("publishedfiledetails")
	}
	return nil
}

type playerList struct {
	Players []Player `json:"players"`
}

func (l *playerList) validate() error {
	if l.Players == nil {
		return missingField("players")
	}
	return nil
}
