package engine

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/services"
)

// Engine answers guide searches from a lazily loaded index.
// It implements the services.Searcher interface.
type Engine struct {
	cache     *IndexCache
	analytics services.AnalyticsProvider
}

// NewEngine creates a search engine over cache. analytics may be nil.
func NewEngine(cache *IndexCache, analytics services.AnalyticsProvider) *Engine {
	return &Engine{cache: cache, analytics: analytics}
}

// Search runs a query. Queries shorter than the minimum length return an
// empty response without touching the index.
func (e *Engine) Search(ctx context.Context, query services.SearchQuery) (services.SearchResponse, error) {
	startTime := time.Now()

	trimmed := strings.TrimSpace(query.Query)
	if utf8.RuneCountInString(trimmed) < e.cache.Settings().MinQueryLength {
		return services.SearchResponse{
			Results: []model.SearchResult{},
			Query:   query.Query,
			QueryId: uuid.New().String(),
		}, nil
	}

	instance, err := e.cache.GetOrLoad(ctx)
	if err != nil {
		return services.SearchResponse{}, err
	}

	response, err := instance.Search(query)
	if err != nil {
		return services.SearchResponse{}, err
	}

	if e.analytics != nil {
		event := model.SearchEvent{
			Query:        trimmed,
			Category:     query.Category,
			ResponseTime: time.Since(startTime),
			ResultCount:  response.Total,
		}
		if err := e.analytics.TrackSearchEvent(event); err != nil {
			log.Printf("Warning: Failed to track search event: %v", err)
		}
	}

	return response, nil
}

// Loaded reports whether the index is loaded.
func (e *Engine) Loaded() bool {
	return e.cache.Loaded()
}

// DocumentCount returns the number of loaded guides.
func (e *Engine) DocumentCount() int {
	return e.cache.DocumentCount()
}

// Reset drops the loaded index so the next search reads the artifact again.
func (e *Engine) Reset() {
	e.cache.Reset()
}
