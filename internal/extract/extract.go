// Package extract turns raw guide bodies into plain text for indexing.
package extract

import (
	"regexp"
	"strings"
)

// Steps run in order over the whole body; code goes before tags and braces.
var cleanSteps = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`import\s+.*?from\s+['"].*?['"];?`), ""},
	{regexp.MustCompile(`export\s+default\s+.*;`), ""},
	{regexp.MustCompile("```[\\s\\S]*?```"), ""},
	{regexp.MustCompile("`[^`]*`"), ""},
	{regexp.MustCompile(`<[^>]*>`), ""},
	{regexp.MustCompile(`\{[^}]*\}`), ""},
	{regexp.MustCompile(`!\[.*?\]\(.*?\)`), ""},
	{regexp.MustCompile(`\[([^\]]*)\]\(.*?\)`), "${1}"},
	{regexp.MustCompile(`#{1,6}\s+`), ""},
	{regexp.MustCompile(`[*_~]`), ""},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

var headingRegex = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

// Clean strips import/export statements, code, tags, expressions, images,
// link syntax, heading markers and emphasis from an MDX body.
// A body that is nothing but markup cleans to the empty string.
func Clean(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	for _, step := range cleanSteps {
		text = step.re.ReplaceAllString(text, step.repl)
	}
	return strings.TrimSpace(text)
}

// Headings returns the text of every markdown heading line in document order.
// Lines are scanned as is, so a "#" line inside a fenced code block counts too.
func Headings(raw string) []string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")

	matches := headingRegex.FindAllStringSubmatch(text, -1)
	headings := make([]string, 0, len(matches))
	for _, m := range matches {
		if h := strings.TrimSpace(m[1]); h != "" {
			headings = append(headings, h)
		}
	}
	return headings
}

// TruncateWords keeps the first n whitespace-separated words, joined by single spaces.
func TruncateWords(text string, n int) string {
	words := strings.Fields(text)
	if n >= 0 && len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// Preview returns the first n characters of text.
func Preview(text string, n int) string {
	runes := []rune(text)
	if n < 0 || len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
