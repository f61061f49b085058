package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/gcbaptista/guide-search/model"
)

type fixedCounter int

func (c fixedCounter) DocumentCount() int { return int(c) }

func TestAnalyticsService_TrackSearchEvent(t *testing.T) {
	service := NewService(fixedCounter(3))

	event := model.SearchEvent{
		Query:        "  Map Projections ",
		Category:     "cartography",
		ResponseTime: 2 * time.Millisecond,
		ResultCount:  1,
	}

	if err := service.TrackSearchEvent(event); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify event was stored
	if len(service.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(service.events))
	}

	storedEvent := service.events[0]
	if storedEvent.Query != "map projections" {
		t.Errorf("Expected normalized query, got %q", storedEvent.Query)
	}
	if storedEvent.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestAnalyticsService_KeepsLatestEvents(t *testing.T) {
	service := NewService(nil)

	for i := 0; i < maxEventsToKeep+5; i++ {
		_ = service.TrackSearchEvent(model.SearchEvent{Query: fmt.Sprintf("q%d", i)})
	}

	if len(service.events) != maxEventsToKeep {
		t.Fatalf("Expected %d events, got %d", maxEventsToKeep, len(service.events))
	}
	if service.events[0].Query != "q5" {
		t.Errorf("Expected oldest events to be dropped, first is %q", service.events[0].Query)
	}
}

func TestAnalyticsService_GetDashboardData(t *testing.T) {
	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	service := NewService(fixedCounter(3))
	service.now = func() time.Time { return now }

	events := []model.SearchEvent{
		{Query: "map", ResponseTime: 2 * time.Millisecond, ResultCount: 2, Timestamp: now.Add(-1 * time.Hour)},
		{Query: "map", Category: "cartography", ResponseTime: 4 * time.Millisecond, ResultCount: 1, Timestamp: now.Add(-2 * time.Hour)},
		{Query: "color", Category: "design", ResponseTime: 30 * time.Millisecond, ResultCount: 1, Timestamp: now.Add(-48 * time.Hour)},
		{Query: "xyzzy", ResponseTime: 120 * time.Millisecond, ResultCount: 0, Timestamp: now.Add(-3 * time.Hour)},
	}
	for _, event := range events {
		if err := service.TrackSearchEvent(event); err != nil {
			t.Fatalf("Failed to track search event: %v", err)
		}
	}

	dashboard, err := service.GetDashboardData()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dashboard.TotalSearches != 4 {
		t.Errorf("Expected 4 total searches, got %d", dashboard.TotalSearches)
	}
	if dashboard.Searches24h != 3 {
		t.Errorf("Expected 3 searches in 24h, got %d", dashboard.Searches24h)
	}
	if dashboard.AvgResponseTimeMs != 39 {
		t.Errorf("Expected 39ms average, got %v", dashboard.AvgResponseTimeMs)
	}
	if dashboard.IndexedDocuments != 3 {
		t.Errorf("Expected 3 indexed documents, got %d", dashboard.IndexedDocuments)
	}
	if dashboard.ZeroResultSearches != 1 || len(dashboard.ZeroResultQueries) != 1 || dashboard.ZeroResultQueries[0].Query != "xyzzy" {
		t.Errorf("Unexpected zero result data: %d %v", dashboard.ZeroResultSearches, dashboard.ZeroResultQueries)
	}
	if len(dashboard.PopularSearches) == 0 || dashboard.PopularSearches[0] != (model.PopularSearch{Query: "map", SearchCount: 2}) {
		t.Errorf("Unexpected popular searches: %v", dashboard.PopularSearches)
	}
	wantUsage := []model.CategoryUsage{{CategorySlug: "cartography", SearchCount: 1}, {CategorySlug: "design", SearchCount: 1}}
	if fmt.Sprint(dashboard.CategoryUsage) != fmt.Sprint(wantUsage) {
		t.Errorf("Expected category usage %v, got %v", wantUsage, dashboard.CategoryUsage)
	}

	dist := dashboard.ResponseTimeDistribution
	if dist.Bucket0To5ms != 2 || dist.Bucket5To25ms != 0 || dist.Bucket25To100ms != 1 || dist.Bucket100msPlus != 1 {
		t.Errorf("Unexpected distribution: %+v", dist)
	}
}

func TestAnalyticsService_EmptyDashboard(t *testing.T) {
	dashboard, err := NewService(nil).GetDashboardData()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if dashboard.TotalSearches != 0 || dashboard.AvgResponseTimeMs != 0 || dashboard.IndexedDocuments != 0 {
		t.Errorf("Expected empty dashboard, got %+v", dashboard)
	}
	if dashboard.PopularSearches == nil || dashboard.CategoryUsage == nil {
		t.Error("Expected empty slices, not nil, so the dashboard encodes as []")
	}
}
