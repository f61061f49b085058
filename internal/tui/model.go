// Package tui implements the interactive guide search client.
// Typing is debounced, the latest query wins, and results open in the browser.
package tui

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/internal/client"
	"github.com/gcbaptista/guide-search/model"
)

// ResultLimit is the number of results requested per search.
const ResultLimit = 10

// State is the client's position in the search cycle.
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateLoading
	StateShowingResults
	StateShowingEmpty
)

func (s State) String() string {
	switch s {
	case StateDebouncing:
		return "debouncing"
	case StateLoading:
		return "loading"
	case StateShowingResults:
		return "results"
	case StateShowingEmpty:
		return "empty"
	default:
		return "idle"
	}
}

// Searcher fetches results for a query. *client.Client implements it.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) (client.Response, error)
}

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	SiteURL   string
	Debounce  time.Duration
	Navigator Navigator
	Keys      *KeyMap
	Styles    *Styles
}

// Model is the bubbletea model of the search client.
type Model struct {
	keys      *KeyMap
	styles    *Styles
	input     textinput.Model
	help      help.Model
	searcher  Searcher
	navigator Navigator
	siteURL   string
	debounce  time.Duration
	ctx       context.Context

	state     State
	seq       int
	results   []model.SearchResult
	selected  int
	panelOpen bool
	status    string
	failed    bool
	width     int
}

// New creates a search client model with a focused input.
func New(searcher Searcher, opts Options) *Model {
	if opts.SiteURL == "" {
		opts.SiteURL = config.DefaultSiteURL
	}
	if opts.Debounce <= 0 {
		opts.Debounce = time.Duration(config.DefaultDebounceMs) * time.Millisecond
	}
	if opts.Navigator == nil {
		opts.Navigator = BrowserNavigator{}
	}
	if opts.Keys == nil {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Styles == nil {
		opts.Styles = DefaultStyles()
	}

	input := textinput.New()
	input.Prompt = "Search guides › "
	input.PromptStyle = opts.Styles.Prompt
	input.Placeholder = "type at least 2 characters"
	input.CharLimit = 200
	input.Focus()

	return &Model{
		keys:      opts.Keys,
		styles:    opts.Styles,
		input:     input,
		help:      help.New(),
		searcher:  searcher,
		navigator: opts.Navigator,
		siteURL:   opts.SiteURL,
		debounce:  opts.Debounce,
		ctx:       context.Background(),
		state:     StateIdle,
	}
}

// WithContext sets the parent context of every fetch.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// State returns the current search state.
func (m *Model) State() State { return m.state }

// Query returns the raw input value.
func (m *Model) Query() string { return m.input.Value() }

// Results returns the results of the last completed search.
func (m *Model) Results() []model.SearchResult { return m.results }

// Selected returns the index of the highlighted result.
func (m *Model) Selected() int { return m.selected }

// PanelOpen reports whether the results panel is shown.
func (m *Model) PanelOpen() bool { return m.panelOpen }

// Focused reports whether the input has focus.
func (m *Model) Focused() bool { return m.input.Focused() }

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search client.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, msg.Width-utf8.RuneCountInString(m.input.Prompt)-1)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case debounceTickMsg:
		return m.handleDebounce(msg)

	case resultsMsg:
		m.handleResults(msg)
		return m, nil

	case navigatedMsg:
		if msg.err != nil {
			log.Printf("Warning: failed to open %s: %v", msg.url, msg.err)
			m.setStatus("Could not open "+msg.url, true)
		} else {
			m.setStatus("Opened "+msg.url, false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.clear()
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.closePanel()
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if n := m.visibleResults(); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if n := m.visibleResults(); n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.visibleResults() > 0 {
			return m, m.navigate(m.results[m.selected])
		}
		return m, nil
	}

	if !m.input.Focused() {
		if key.Matches(msg, m.keys.Focus) {
			return m, m.focus()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.scheduleSearch())
	}
	return m, cmd
}

// handleMouse maps left clicks onto the input row and the result rows.
// Anything else closes the panel and keeps the query.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y == inputRow {
		return m, m.focus()
	}
	if i, ok := m.resultAt(msg.Y); ok {
		m.selected = i
		return m, m.navigate(m.results[i])
	}

	m.closePanel()
	return m, nil
}

// handleDebounce starts a fetch when the tick belongs to the latest edit.
func (m *Model) handleDebounce(msg debounceTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}

	query := strings.TrimSpace(m.input.Value())
	if utf8.RuneCountInString(query) < config.MinQueryLength {
		m.results = nil
		m.selected = 0
		m.panelOpen = false
		m.state = StateIdle
		m.setStatus("", false)
		return m, nil
	}

	m.state = StateLoading
	return m, m.fetch(msg.seq, query)
}

// handleResults applies a finished fetch unless a newer edit superseded it.
func (m *Model) handleResults(msg resultsMsg) {
	if msg.seq != m.seq {
		return
	}
	m.selected = 0

	if msg.err != nil {
		log.Printf("Warning: guide search for %q failed: %v", msg.query, msg.err)
		m.results = nil
		m.panelOpen = false
		m.state = StateIdle
		m.setStatus("Search failed", true)
		return
	}

	m.results = msg.results
	m.panelOpen = len(msg.results) > 0
	if m.panelOpen {
		m.state = StateShowingResults
		m.setStatus("", false)
	} else {
		m.state = StateShowingEmpty
		m.setStatus("No guides match \""+msg.query+"\"", false)
	}
}

func (m *Model) scheduleSearch() tea.Cmd {
	m.seq++
	seq := m.seq
	m.state = StateDebouncing
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceTickMsg{seq: seq}
	})
}

func (m *Model) fetch(seq int, query string) tea.Cmd {
	searcher := m.searcher
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, client.DefaultTimeout)
		defer cancel()

		resp, err := searcher.Search(ctx, query, ResultLimit)
		return resultsMsg{seq: seq, query: query, results: resp.Results, err: err}
	}
}

func (m *Model) navigate(result model.SearchResult) tea.Cmd {
	target := GuideURL(m.siteURL, result.Slug)
	navigator := m.navigator
	return func() tea.Msg {
		return navigatedMsg{url: target, err: navigator.Open(target)}
	}
}

func (m *Model) focus() tea.Cmd {
	cmd := m.input.Focus()
	if len(m.results) > 0 {
		m.panelOpen = true
		m.state = StateShowingResults
	}
	return cmd
}

func (m *Model) closePanel() {
	if m.panelOpen {
		m.panelOpen = false
		m.state = StateIdle
	}
}

// clear empties the query and results; in-flight ticks and fetches become stale.
func (m *Model) clear() {
	m.seq++
	m.input.SetValue("")
	m.results = nil
	m.selected = 0
	m.panelOpen = false
	m.state = StateIdle
	m.setStatus("", false)
}

// visibleResults returns how many results keyboard navigation can reach.
func (m *Model) visibleResults() int {
	if !m.panelOpen {
		return 0
	}
	return len(m.results)
}

func (m *Model) setStatus(status string, failed bool) {
	m.status = status
	m.failed = failed
}
