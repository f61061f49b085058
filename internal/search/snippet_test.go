package search

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractSnippet(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, "", ExtractSnippet("", "map", 150))
	})

	t.Run("short text with match is returned whole", func(t *testing.T) {
		assert.Equal(t, "The quick brown fox", ExtractSnippet("The quick brown fox", "fox", 150))
	})

	t.Run("window around match", func(t *testing.T) {
		text := strings.Repeat("x", 100) + " target " + strings.Repeat("y", 200)
		got := ExtractSnippet(text, "target", 20)

		assert.True(t, strings.HasPrefix(got, "..."))
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.Contains(t, got, "target")
		// 50 runes of leading context plus maxLength from the match
		assert.Equal(t, 70+6, utf8.RuneCountInString(got))
	})

	t.Run("no match falls back to the start", func(t *testing.T) {
		text := strings.Repeat("z", 200)
		got := ExtractSnippet(text, "absent", 150)
		assert.Equal(t, strings.Repeat("z", 150)+"...", got)

		assert.Equal(t, "short text", ExtractSnippet("short text", "absent", 150))
	})

	t.Run("longest query word wins", func(t *testing.T) {
		text := "map " + strings.Repeat("w ", 150) + "projection end"
		got := ExtractSnippet(text, "map projection", 20)
		assert.True(t, strings.HasPrefix(got, "..."))
		assert.Contains(t, got, "projection")
	})

	t.Run("ties keep the earlier query word", func(t *testing.T) {
		text := "xyz " + strings.Repeat("w ", 150) + "abc end"
		got := ExtractSnippet(text, "abc xyz", 20)
		assert.True(t, strings.HasPrefix(got, "..."))
		assert.Contains(t, got, "abc")
	})

	t.Run("case insensitive and rune based", func(t *testing.T) {
		text := strings.Repeat("é", 80) + " ÉCOLE de cartographie"
		got := ExtractSnippet(text, "école", 10)
		assert.Equal(t, "..."+strings.Repeat("é", 49)+" ÉCOLE de c...", got)
	})
}

func TestHighlightText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{"single word", "Map Projections", "map", "<mark>Map</mark> Projections"},
		{"several words", "Map Projections", "proj map", "<mark>Map</mark> <mark>Proj</mark>ections"},
		{"every occurrence", "map of maps", "map", "<mark>map</mark> of <mark>map</mark>s"},
		{"longest alternative first", "Mapping", "map mapping", "<mark>Mapping</mark>"},
		{"regex metacharacters", "C++ basics", "c++", "<mark>C++</mark> basics"},
		{"empty query", "Map Projections", "   ", "Map Projections"},
		{"no match", "Map Projections", "color", "Map Projections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightText(tt.text, tt.query))
		})
	}
}
