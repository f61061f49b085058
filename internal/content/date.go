package content

import (
	"fmt"
	"time"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(date string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a publishedAt value as "January 2, 2006".
// Values that are not dates are returned unchanged.
func FormatDate(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}
	return t.Format("January 2, 2006")
}

// FormatDateRelative appends the elapsed time since date, e.g. "March 1, 2024 (1y ago)".
// Years and months count elapsed days (365 and 30), not calendar boundaries.
func FormatDateRelative(date string, now time.Time) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}

	days := int(now.UTC().Sub(t).Hours() / 24)
	var relative string
	switch {
	case days >= 365:
		relative = fmt.Sprintf("%dy ago", days/365)
	case days >= 30:
		relative = fmt.Sprintf("%dmo ago", days/30)
	case days > 0:
		relative = fmt.Sprintf("%dd ago", days)
	default:
		relative = "today"
	}
	return fmt.Sprintf("%s (%s)", t.Format("January 2, 2006"), relative)
}
