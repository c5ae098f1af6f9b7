package filter

import (
	"strings"
	"time"

	"github.com/s0up4200/steamworkshop/workshop"
)

// itemEnv exposes a content item and the helper functions to an expression.
func itemEnv(item workshop.ContentItem) map[string]any {
	return map[string]any{
		// Item data
		"Item": item,

		// Tag helpers
		"hasTag": item.HasTag,

		// Date helpers
		"daysSince": func(t time.Time) int {
			if t.IsZero() {
				return 0
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Current time
		"now": time.Now,

		// Direct item properties for convenience
		"ID":                    item.PublishedFileID,
		"Title":                 deref(item.Title),
		"Description":           deref(item.Description),
		"Creator":               deref(item.Creator),
		"Filename":              deref(item.Filename),
		"AppID":                 derefInt(item.ConsumerAppID),
		"FileSize":              derefSize(item.FileSize),
		"Visibility":            derefInt(item.Visibility),
		"Banned":                item.IsBanned(),
		"BanReason":             deref(item.BanReason),
		"Subscriptions":         derefInt(item.Subscriptions),
		"Favorited":             derefInt(item.Favorited),
		"LifetimeSubscriptions": derefInt(item.LifetimeSubscriptions),
		"LifetimeFavorited":     derefInt(item.LifetimeFavorited),
		"Views":                 derefInt(item.Views),
		"Tags":                  item.TagNames(),
		"Created":               item.CreatedAt(),
		"Updated":               item.UpdatedAt(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *uint32) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

func derefSize(v *uint64) int64 {
	if v == nil {
		return 0
	}
	return int64(*v)
}
