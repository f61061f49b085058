package model

// GuideMetadata is the typed frontmatter of a guide file.
// Optional fields are pointers or empty strings until defaults are applied.
type GuideMetadata struct {
	Title        string `yaml:"title" json:"title"`
	Slug         string `yaml:"slug" json:"slug"`
	Category     string `yaml:"category" json:"category"`
	CategorySlug string `yaml:"categorySlug" json:"categorySlug"`
	Summary      string `yaml:"summary" json:"summary"`
	Order        *int   `yaml:"order" json:"order,omitempty"`
	PublishedAt  string `yaml:"publishedAt" json:"publishedAt"`
	Featured     bool   `yaml:"featured" json:"featured"`
}

// ContentDocument is a parsed guide file before indexing.
type ContentDocument struct {
	Slug     string        // unique, stable across rebuilds
	File     string        // base name of the source file
	Metadata GuideMetadata // frontmatter with defaults applied
	RawBody  string        // body below the frontmatter block, untouched
}

// OrderOrDefault returns the display order, treating a missing or zero order as the sentinel.
func (m GuideMetadata) OrderOrDefault(sentinel int) int {
	if m.Order == nil || *m.Order == 0 {
		return sentinel
	}
	return *m.Order
}

// IndexDocument is what the indexer consumes: searchable text keyed by field name,
// plus the display record stored next to the index.
type IndexDocument struct {
	ID     string
	Fields map[string]string
	Stored StoredDocument
}

// StoredDocument is the display record kept next to the index for every guide.
// It is returned as is, without re-reading the index.
type StoredDocument struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Category       string `json:"category"`
	CategorySlug   string `json:"categorySlug"`
	Summary        string `json:"summary"`
	Order          int    `json:"order"`
	PublishedAt    string `json:"publishedAt"`
	Featured       bool   `json:"featured"`
	ContentPreview string `json:"contentPreview"`
}

// SearchResult is one ranked hit as returned to clients.
// Match maps each matched index term to the fields it was found in.
type SearchResult struct {
	StoredDocument
	Score            float64             `json:"score"`
	Match            map[string][]string `json:"match"`
	Snippet          string              `json:"snippet"`
	HighlightedTitle string              `json:"highlightedTitle"`
}
