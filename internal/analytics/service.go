package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/services"
)

const (
	maxEventsToKeep   = 10000 // Keep last 10k events for performance
	maxPopularQueries = 5
)

// Service implements analytics tracking and reporting.
// Events live in memory only and are lost on restart.
type Service struct {
	mutex     sync.RWMutex
	events    []model.SearchEvent
	documents services.DocumentCounter
	now       func() time.Time
}

// NewService creates a new analytics service. documents may be nil.
func NewService(documents services.DocumentCounter) *Service {
	return &Service{
		events:    make([]model.SearchEvent, 0),
		documents: documents,
		now:       time.Now,
	}
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	event.Query = strings.ToLower(strings.TrimSpace(event.Query))
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	return nil
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() (model.AnalyticsDashboard, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	yesterday := s.now().Add(-24 * time.Hour)
	zeroResultEvents := s.filterZeroResults(s.events)

	dashboard := model.AnalyticsDashboard{
		TotalSearches:            len(s.events),
		Searches24h:              len(s.filterEventsByTime(s.events, yesterday)),
		AvgResponseTimeMs:        s.calculateAvgResponseTime(s.events),
		ZeroResultSearches:       len(zeroResultEvents),
		IndexedDocuments:         s.getTotalDocuments(),
		PopularSearches:          s.getPopularSearches(s.events),
		ZeroResultQueries:        s.getPopularSearches(zeroResultEvents),
		CategoryUsage:            s.getCategoryUsage(s.events),
		ResponseTimeDistribution: s.getResponseTimeDistribution(s.events),
	}

	return dashboard, nil
}

// filterEventsByTime returns events after the given time
func (s *Service) filterEventsByTime(events []model.SearchEvent, after time.Time) []model.SearchEvent {
	var filtered []model.SearchEvent
	for _, event := range events {
		if event.Timestamp.After(after) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// filterZeroResults returns events that found nothing
func (s *Service) filterZeroResults(events []model.SearchEvent) []model.SearchEvent {
	var filtered []model.SearchEvent
	for _, event := range events {
		if event.ResultCount == 0 {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// calculateAvgResponseTime calculates average response time for events in milliseconds
func (s *Service) calculateAvgResponseTime(events []model.SearchEvent) float64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return float64(total) / float64(len(events)) / float64(time.Millisecond)
}

// getTotalDocuments returns the number of searchable guides, 0 while no index is loaded
func (s *Service) getTotalDocuments() int {
	if s.documents == nil {
		return 0
	}
	return s.documents.DocumentCount()
}

// getPopularSearches returns the most frequent queries, most searched first
func (s *Service) getPopularSearches(events []model.SearchEvent) []model.PopularSearch {
	queryCounts := make(map[string]int)
	for _, event := range events {
		if event.Query != "" {
			queryCounts[event.Query]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}

	// Sort by count descending, then alphabetically for a stable dashboard
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if len(popular) > maxPopularQueries {
		popular = popular[:maxPopularQueries]
	}
	return popular
}

// getCategoryUsage counts searches per category filter
func (s *Service) getCategoryUsage(events []model.SearchEvent) []model.CategoryUsage {
	counts := make(map[string]int)
	for _, event := range events {
		if event.Category != "" {
			counts[event.Category]++
		}
	}

	usage := make([]model.CategoryUsage, 0, len(counts))
	for category, count := range counts {
		usage = append(usage, model.CategoryUsage{CategorySlug: category, SearchCount: count})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].SearchCount != usage[j].SearchCount {
			return usage[i].SearchCount > usage[j].SearchCount
		}
		return usage[i].CategorySlug < usage[j].CategorySlug
	})
	return usage
}

// getResponseTimeDistribution returns response time distribution
func (s *Service) getResponseTimeDistribution(events []model.SearchEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}

	for _, event := range events {
		ms := event.ResponseTime.Milliseconds()
		switch {
		case ms < 5:
			dist.Bucket0To5ms++
		case ms < 25:
			dist.Bucket5To25ms++
		case ms < 100:
			dist.Bucket25To100ms++
		default:
			dist.Bucket100msPlus++
		}
	}

	return dist
}
