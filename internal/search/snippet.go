package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gcbaptista/guide-search/config"
)

const ellipsis = "..."

// ExtractSnippet returns a window of text around the longest query word found in it.
// Lengths and positions are counted in runes. When no query word occurs, the
// first maxLength runes are returned.
func ExtractSnippet(text, query string, maxLength int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	lowerText := lowerRunes(runes)

	bestPos, bestLen := -1, 0
	for _, word := range strings.Fields(query) {
		w := lowerRunes([]rune(word))
		if len(w) <= bestLen {
			continue
		}
		if pos := indexRunes(lowerText, w); pos >= 0 {
			bestPos, bestLen = pos, len(w)
		}
	}

	if bestPos < 0 {
		if len(runes) <= maxLength {
			return text
		}
		return string(runes[:maxLength]) + ellipsis
	}

	start := bestPos - config.SnippetLeadingContext
	if start < 0 {
		start = 0
	}
	end := bestPos + maxLength
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(runes) {
		snippet += ellipsis
	}
	return snippet
}

// HighlightText wraps every case-insensitive occurrence of each query word in <mark> tags.
// All words are matched in one pass, longest first, so marks never nest.
func HighlightText(text, query string) string {
	words := strings.Fields(query)
	if len(words) == 0 || text == "" {
		return text
	}

	sort.SliceStable(words, func(i, j int) bool {
		return utf8.RuneCountInString(words[i]) > utf8.RuneCountInString(words[j])
	})
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}

	pattern := regexp.MustCompile("(?i)(" + strings.Join(quoted, "|") + ")")
	return pattern.ReplaceAllString(text, "<mark>${1}</mark>")
}

// lowerRunes lowercases rune by rune so positions stay aligned with the input.
func lowerRunes(runes []rune) []rune {
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}
	return lower
}

// indexRunes returns the first position of needle in haystack, or -1.
func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
