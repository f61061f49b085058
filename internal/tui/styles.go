package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Styles contains the lipgloss styles used by the search client.
type Styles struct {
	Prompt    lipgloss.Style
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Highlight lipgloss.Style
	Featured  lipgloss.Style
	Muted     lipgloss.Style
	Snippet   lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	primary := lipgloss.Color("#7C3AED")
	muted := lipgloss.Color("#6C7086")

	return &Styles{
		Prompt:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Selected:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#F9E2AF")),
		Featured:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Snippet:   lipgloss.NewStyle().Foreground(muted).PaddingLeft(4),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Help:      lipgloss.NewStyle().Foreground(muted),
	}
}

// RenderMarked renders text containing <mark> spans, styling marked runs with highlight.
// An unterminated <mark> highlights the rest of the text.
func RenderMarked(text string, base, highlight lipgloss.Style) string {
	var b strings.Builder
	rest := text
	for {
		start := strings.Index(rest, markOpen)
		if start < 0 {
			if rest != "" {
				b.WriteString(base.Render(rest))
			}
			return b.String()
		}
		if start > 0 {
			b.WriteString(base.Render(rest[:start]))
		}
		rest = rest[start+len(markOpen):]

		end := strings.Index(rest, markClose)
		if end < 0 {
			b.WriteString(highlight.Render(rest))
			return b.String()
		}
		if end > 0 {
			b.WriteString(highlight.Render(rest[:end]))
		}
		rest = rest[end+len(markClose):]
	}
}

// StripMarks removes <mark> tags, leaving the plain text.
func StripMarks(text string) string {
	return strings.NewReplacer(markOpen, "", markClose, "").Replace(text)
}
