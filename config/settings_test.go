package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(s *SearchSettings)
		expectedErrors int
		description    string
	}{
		{
			name:           "default guide settings are valid",
			mutate:         func(s *SearchSettings) {},
			expectedErrors: 0,
			description:    "The shipped configuration must always validate",
		},
		{
			name: "boost on a field that is not searchable",
			mutate: func(s *SearchSettings) {
				s.Boosts["slug"] = 2
			},
			expectedErrors: 1,
			description:    "Boosting a non-indexed field would be silently ignored",
		},
		{
			name: "non-positive boost",
			mutate: func(s *SearchSettings) {
				s.Boosts[FieldTitle] = 0
			},
			expectedErrors: 1,
			description:    "A zero boost would erase a field from ranking",
		},
		{
			name: "duplicate searchable field",
			mutate: func(s *SearchSettings) {
				s.SearchableFields = append(s.SearchableFields, FieldTitle)
			},
			expectedErrors: 1,
			description:    "Duplicates would double count term frequencies",
		},
		{
			name: "blank stored field",
			mutate: func(s *SearchSettings) {
				s.StoredFields = append(s.StoredFields, "  ")
			},
			expectedErrors: 1,
			description:    "Whitespace-only names are rejected",
		},
		{
			name: "fuzzy factor out of range",
			mutate: func(s *SearchSettings) {
				s.FuzzyFactor = 1.5
			},
			expectedErrors: 1,
			description:    "Relative fuzziness must stay below 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSearchSettings()
			tt.mutate(&settings)

			errors := settings.Validate()

			if len(errors) != tt.expectedErrors {
				t.Errorf("Expected %d errors, got %d. Errors: %v", tt.expectedErrors, len(errors), errors)
				t.Logf("Description: %s", tt.description)
			}
		})
	}
}

func TestMaxEditDistance(t *testing.T) {
	settings := DefaultSearchSettings()

	tests := []struct {
		length   int
		expected int
	}{
		{0, 0},
		{2, 0},
		{3, 1}, // 0.6 rounds up
		{7, 1}, // 1.4 rounds down
		{8, 2}, // 1.6 rounds up
		{13, 3},
		{60, DefaultMaxFuzzyEdits},
	}

	for _, tt := range tests {
		if got := settings.MaxEditDistance(tt.length); got != tt.expected {
			t.Errorf("MaxEditDistance(%d) = %d, want %d", tt.length, got, tt.expected)
		}
	}
}

func TestBoostDefaultsToOne(t *testing.T) {
	settings := DefaultSearchSettings()

	if got := settings.Boost(FieldTitle); got != 3 {
		t.Errorf("title boost = %v, want 3", got)
	}
	if got := settings.Boost(FieldHeadings); got != 2 {
		t.Errorf("headings boost = %v, want 2", got)
	}
	if got := settings.Boost(FieldCategory); got != 1.5 {
		t.Errorf("category boost = %v, want 1.5", got)
	}
	if got := settings.Boost(FieldContent); got != 1 {
		t.Errorf("content boost = %v, want 1", got)
	}
}

func TestSameFields(t *testing.T) {
	settings := DefaultSearchSettings()

	if !settings.SameFields([]string{"title", "content", "category", "headings", "summary"}) {
		t.Error("Expected the default field list to match")
	}
	if settings.SameFields([]string{"title", "content"}) {
		t.Error("Expected a shorter field list not to match")
	}
	if settings.SameFields([]string{"content", "title", "category", "headings", "summary"}) {
		t.Error("Expected a reordered field list not to match")
	}
}

func TestApplyDefaults(t *testing.T) {
	var settings SearchSettings
	settings.ApplyDefaults()

	if len(settings.SearchableFields) != 5 {
		t.Errorf("Expected 5 searchable fields, got %v", settings.SearchableFields)
	}
	if settings.MinQueryLength != MinQueryLength {
		t.Errorf("Expected min query length %d, got %d", MinQueryLength, settings.MinQueryLength)
	}
	if settings.DefaultLimit != DefaultResultLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultResultLimit, settings.DefaultLimit)
	}
	if settings.Boosts == nil {
		t.Error("Expected boosts map to be initialized")
	}
}
