package tui

import (
	"github.com/gcbaptista/guide-search/model"
)

// debounceTickMsg fires once the input has been quiet for the debounce delay.
type debounceTickMsg struct {
	seq int
}

// resultsMsg carries a finished fetch back to the model.
type resultsMsg struct {
	seq     int
	query   string
	results []model.SearchResult
	err     error
}

// navigatedMsg reports the outcome of opening a guide.
type navigatedMsg struct {
	url string
	err error
}
