package tui

import (
	"strings"

	"github.com/gcbaptista/guide-search/internal/content"
	"github.com/gcbaptista/guide-search/model"
)

// Screen layout, in rows from the top. Every result takes linesPerResult rows.
const (
	inputRow       = 0
	panelTop       = 1
	linesPerResult = 2
)

const featuredMarker = "★"

// View renders the input, the results panel and the status line.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.panelOpen {
		for i, r := range m.results {
			b.WriteString(m.renderResult(i, r))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderResult(i int, r model.SearchResult) string {
	cursor := "  "
	base := m.styles.Title
	if i == m.selected {
		cursor = m.styles.Selected.Render("› ")
		base = m.styles.Selected
	}

	title := r.HighlightedTitle
	if title == "" {
		title = r.Title
	}

	var meta []string
	if r.Category != "" {
		meta = append(meta, r.Category)
	}
	if r.PublishedAt != "" {
		meta = append(meta, content.FormatDate(r.PublishedAt))
	}

	line := cursor + RenderMarked(title, base, m.styles.Highlight)
	if r.Featured {
		line += m.styles.Featured.Render(" " + featuredMarker)
	}
	if len(meta) > 0 {
		line += m.styles.Muted.Render("  " + strings.Join(meta, " · "))
	}

	snippet := strings.Join(strings.Fields(r.Snippet), " ")
	if m.width > 8 {
		snippet = truncateRunes(snippet, m.width-8)
	}
	return line + "\n" + m.styles.Snippet.Render(snippet) + "\n"
}

func (m *Model) statusLine() string {
	switch {
	case m.failed:
		return m.styles.Error.Render(m.status)
	case m.status != "":
		return m.styles.Muted.Render(m.status)
	case m.state == StateLoading:
		return m.styles.Muted.Render("Searching…")
	default:
		return ""
	}
}

// resultAt maps a screen row to a result index while the panel is open.
func (m *Model) resultAt(row int) (int, bool) {
	if !m.panelOpen || row < panelTop {
		return 0, false
	}
	i := (row - panelTop) / linesPerResult
	if i >= len(m.results) {
		return 0, false
	}
	return i, true
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
