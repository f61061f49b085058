package model

import "time"

// SearchEvent represents a single search for analytics tracking
type SearchEvent struct {
	Query        string        `json:"query"`
	Category     string        `json:"category,omitempty"`
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for a search term
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// CategoryUsage counts searches restricted to a category
type CategoryUsage struct {
	CategorySlug string `json:"category_slug"`
	SearchCount  int    `json:"search_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To5ms    int `json:"bucket_0_5ms"`
	Bucket5To25ms   int `json:"bucket_5_25ms"`
	Bucket25To100ms int `json:"bucket_25_100ms"`
	Bucket100msPlus int `json:"bucket_100ms_plus"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	TotalSearches      int     `json:"total_searches"`
	Searches24h        int     `json:"searches_24h"`
	AvgResponseTimeMs  float64 `json:"avg_response_time_ms"`
	ZeroResultSearches int     `json:"zero_result_searches"`
	IndexedDocuments   int     `json:"indexed_documents"`

	PopularSearches          []PopularSearch          `json:"popular_searches"`
	ZeroResultQueries        []PopularSearch          `json:"zero_result_queries"`
	CategoryUsage            []CategoryUsage          `json:"category_usage"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
