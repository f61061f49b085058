package services

import (
	"context"

	"github.com/gcbaptista/guide-search/model"
)

// SearchQuery is one guide search request.
type SearchQuery struct {
	Query    string
	Category string // categorySlug to keep; empty keeps all
	Limit    int    // values <= 0 use the default limit
}

// SearchResponse is the result of a guide search.
// The HTTP payload exposes results, total and query; Took and QueryId are for logs and tools.
type SearchResponse struct {
	Results []model.SearchResult `json:"results"`
	Total   int                  `json:"total"`
	Query   string               `json:"query"`
	Took    int64                `json:"-"` // milliseconds
	QueryId string               `json:"-"` // unique UUID for this search query
}

// Searcher defines guide search over the built index
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) (SearchResponse, error)
}

// IndexStatus reports whether the search index is currently loaded
type IndexStatus interface {
	Loaded() bool
}

// SearchEngine is what the HTTP and MCP surfaces need from the engine
type SearchEngine interface {
	Searcher
	IndexStatus
}

// DocumentCounter reports how many guides are searchable
type DocumentCounter interface {
	DocumentCount() int
}

// AnalyticsProvider records searches and summarizes them
type AnalyticsProvider interface {
	TrackSearchEvent(event model.SearchEvent) error
	GetDashboardData() (model.AnalyticsDashboard, error)
}
