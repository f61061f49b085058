// Package api exposes guide search over HTTP.
package api

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gcbaptista/guide-search/config"
)

// ParseLimit converts the limit query parameter.
// Missing, malformed or non-positive values use the default; values above maxLimit are clamped.
func ParseLimit(raw string, maxLimit int) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < 1 {
		limit = config.DefaultResultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

// IsShortQuery reports whether q is too short to search once trimmed.
func IsShortQuery(q string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(q)) < config.MinQueryLength
}

// NormalizeCategory trims a category slug filter. Slugs compare exactly, so case is kept.
func NormalizeCategory(raw string) string {
	return strings.TrimSpace(raw)
}
