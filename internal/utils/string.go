package utils

import (
	"regexp"
	"strings"

	"github.com/sendbun/SimpleInbox/internal/enum"
)

var siteKeyUnsafe = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// SiteKey derives the storage key for an origin and account scope. The same
// origin always yields the same key, and the two scopes never collide.
func SiteKey(origin string, scope enum.AccountScope) string {
	prefix := "tempmail-"
	if scope == enum.ScopeFiveMinute {
		prefix = "tempmail-5min-"
	}
	if origin == "" {
		origin = "default"
	}
	return siteKeyUnsafe.ReplaceAllString(prefix+origin, "-")
}

// FirstNonEmpty returns the first non-empty string of its arguments
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
