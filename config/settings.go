// Package config provides configuration structures for guide search.
// SearchSettings is the single source of truth for which fields are indexed,
// how they are boosted and how lenient matching is. The builder, the loader
// and the query engine all read it from here.
package config

import (
	"strings"
)

// Searchable and stored field names.
const (
	FieldTitle        = "title"
	FieldContent      = "content"
	FieldCategory     = "category"
	FieldHeadings     = "headings"
	FieldSummary      = "summary"
	FieldSlug         = "slug"
	FieldCategorySlug = "categorySlug"
	FieldOrder        = "order"
	FieldPublishedAt  = "publishedAt"
)

// Defaults shared by the builder and the query path.
const (
	DefaultOrder          = 999
	ContentWordLimit      = 500
	ContentPreviewLength  = 300
	SnippetLength         = 150
	SnippetLeadingContext = 50
	MinQueryLength        = 2
	DefaultResultLimit    = 10
	DefaultFuzzyFactor    = 0.2
	DefaultMaxFuzzyEdits  = 6
	DefaultPrefixWeight   = 0.375
	DefaultFuzzyWeight    = 0.45
	ContentFileExt        = ".mdx"
)

// SearchSettings contains all options that must agree between index build
// time and query time. Changing any of them requires rebuilding the artifact.
type SearchSettings struct {
	SearchableFields []string           `json:"searchable_fields"` // Fields tokenized into the index, in priority order
	StoredFields     []string           `json:"stored_fields"`     // Fields kept on each document record for display
	Boosts           map[string]float64 `json:"boosts"`            // Per-field score multiplier; unlisted fields use 1
	FuzzyFactor      float64            `json:"fuzzy_factor"`      // Max edit distance relative to query term length
	MaxFuzzyEdits    int                `json:"max_fuzzy_edits"`   // Upper bound on the fuzzy edit distance
	Prefix           bool               `json:"prefix"`            // Whether query terms also match as prefixes
	PrefixWeight     float64            `json:"prefix_weight"`     // Score weight of prefix-derived matches
	FuzzyWeight      float64            `json:"fuzzy_weight"`      // Score weight of fuzzy-derived matches
	ContentWordLimit int                `json:"content_word_limit"`
	PreviewLength    int                `json:"preview_length"`
	SnippetLength    int                `json:"snippet_length"`
	MinQueryLength   int                `json:"min_query_length"`
	DefaultLimit     int                `json:"default_limit"`
}

// DefaultSearchSettings returns the guide search configuration.
func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		SearchableFields: []string{FieldTitle, FieldContent, FieldCategory, FieldHeadings, FieldSummary},
		StoredFields: []string{
			FieldTitle, FieldSlug, FieldCategory, FieldCategorySlug, FieldSummary, FieldOrder, FieldPublishedAt,
		},
		Boosts: map[string]float64{
			FieldTitle:    3,
			FieldHeadings: 2,
			FieldCategory: 1.5,
		},
		FuzzyFactor:      DefaultFuzzyFactor,
		MaxFuzzyEdits:    DefaultMaxFuzzyEdits,
		Prefix:           true,
		PrefixWeight:     DefaultPrefixWeight,
		FuzzyWeight:      DefaultFuzzyWeight,
		ContentWordLimit: ContentWordLimit,
		PreviewLength:    ContentPreviewLength,
		SnippetLength:    SnippetLength,
		MinQueryLength:   MinQueryLength,
		DefaultLimit:     DefaultResultLimit,
	}
}

// Boost returns the score multiplier for a field.
func (settings *SearchSettings) Boost(field string) float64 {
	if b, ok := settings.Boosts[field]; ok {
		return b
	}
	return 1
}

// MaxEditDistance returns the fuzzy edit budget for a query term of the given rune length.
func (settings *SearchSettings) MaxEditDistance(termLength int) int {
	if settings.FuzzyFactor <= 0 {
		return 0
	}
	// round half away from zero, like Math.round on positive values
	d := int(float64(termLength)*settings.FuzzyFactor + 0.5)
	if settings.MaxFuzzyEdits > 0 && d > settings.MaxFuzzyEdits {
		d = settings.MaxFuzzyEdits
	}
	return d
}

// SameFields reports whether the given searchable field list matches these settings exactly.
func (settings *SearchSettings) SameFields(fields []string) bool {
	if len(fields) != len(settings.SearchableFields) {
		return false
	}
	for i, f := range settings.SearchableFields {
		if fields[i] != f {
			return false
		}
	}
	return true
}

// Validate checks field names and numeric options.
// It returns a list of human-readable problems, empty when the settings are usable.
func (settings *SearchSettings) Validate() []string {
	var conflicts []string

	conflicts = append(conflicts, checkDuplicates("searchable_fields", settings.SearchableFields)...)
	conflicts = append(conflicts, checkDuplicates("stored_fields", settings.StoredFields)...)
	conflicts = append(conflicts, settings.validateFieldReferences()...)

	allFields := make([]string, 0, len(settings.SearchableFields)+len(settings.StoredFields))
	allFields = append(allFields, settings.SearchableFields...)
	allFields = append(allFields, settings.StoredFields...)
	for _, field := range allFields {
		if strings.TrimSpace(field) == "" {
			conflicts = append(conflicts, "Field name cannot be empty or whitespace-only")
		}
	}

	if len(settings.SearchableFields) == 0 {
		conflicts = append(conflicts, "At least one searchable field is required")
	}
	if settings.FuzzyFactor < 0 || settings.FuzzyFactor >= 1 {
		conflicts = append(conflicts, "fuzzy_factor must be in [0, 1)")
	}
	if settings.MinQueryLength < 1 {
		conflicts = append(conflicts, "min_query_length must be at least 1")
	}

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, fields []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, field := range fields {
		if seen[field] {
			errors = append(errors, "Duplicate field '"+field+"' found in "+fieldName)
		}
		seen[field] = true
	}

	return errors
}

// validateFieldReferences checks that every boosted field is searchable
func (settings *SearchSettings) validateFieldReferences() []string {
	var errors []string

	searchableFieldsSet := make(map[string]bool)
	for _, field := range settings.SearchableFields {
		searchableFieldsSet[field] = true
	}

	for field, boost := range settings.Boosts {
		if !searchableFieldsSet[field] {
			errors = append(errors, "Field '"+field+"' in boosts is not in searchable_fields")
		}
		if boost <= 0 {
			errors = append(errors, "Boost for field '"+field+"' must be positive")
		}
	}

	return errors
}

// ApplyDefaults fills zero values with the guide defaults.
func (settings *SearchSettings) ApplyDefaults() {
	defaults := DefaultSearchSettings()

	if settings.SearchableFields == nil {
		settings.SearchableFields = defaults.SearchableFields
	}
	if settings.StoredFields == nil {
		settings.StoredFields = defaults.StoredFields
	}
	if settings.Boosts == nil {
		settings.Boosts = map[string]float64{}
	}
	if settings.PrefixWeight == 0 {
		settings.PrefixWeight = defaults.PrefixWeight
	}
	if settings.FuzzyWeight == 0 {
		settings.FuzzyWeight = defaults.FuzzyWeight
	}
	if settings.ContentWordLimit == 0 {
		settings.ContentWordLimit = defaults.ContentWordLimit
	}
	if settings.PreviewLength == 0 {
		settings.PreviewLength = defaults.PreviewLength
	}
	if settings.SnippetLength == 0 {
		settings.SnippetLength = defaults.SnippetLength
	}
	if settings.MinQueryLength == 0 {
		settings.MinQueryLength = defaults.MinQueryLength
	}
	if settings.DefaultLimit == 0 {
		settings.DefaultLimit = defaults.DefaultLimit
	}
}
