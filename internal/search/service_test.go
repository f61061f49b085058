package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/index"
	"github.com/gcbaptista/guide-search/internal/indexing"
	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/services"
	"github.com/gcbaptista/guide-search/store"
)

// --- Test Helpers ---

type testGuide struct {
	id, title, category, categorySlug, content, headings, summary string
}

var testGuides = []testGuide{
	{
		id: "map-projections", title: "Map Projections", category: "Cartography", categorySlug: "cartography",
		content:  "Every map distorts the globe. The Mercator projection keeps angles while equal area projections keep size.",
		headings: "Why projections matter Choosing a projection",
		summary:  "How flat maps represent a round earth.",
	},
	{
		id: "color-theory", title: "Color Theory", category: "Design", categorySlug: "design",
		content:  "Sequential palettes suit ordered data. Diverging palettes highlight a midpoint.",
		headings: "Sequential palettes Diverging palettes",
		summary:  "Picking colors for thematic layers.",
	},
	{
		id: "typography-basics", title: "Typography Basics", category: "Design", categorySlug: "design",
		content:  "Label placement and font hierarchy make a layout readable.",
		headings: "Label placement Font hierarchy",
		summary:  "",
	},
}

// setupTestSearchService indexes guides with the default settings and returns a search service over them.
func setupTestSearchService(t *testing.T, guides []testGuide) *Service {
	t.Helper()
	settings := config.DefaultSearchSettings()
	invIdx := index.NewInvertedIndex(settings.SearchableFields)
	docStore := store.NewDocumentStore()

	indexer, err := indexing.NewService(invIdx, docStore, &settings)
	require.NoError(t, err)

	docs := make([]model.IndexDocument, 0, len(guides))
	for i, g := range guides {
		docs = append(docs, model.IndexDocument{
			ID: g.id,
			Fields: map[string]string{
				config.FieldTitle:    g.title,
				config.FieldContent:  g.content,
				config.FieldCategory: g.category,
				config.FieldHeadings: g.headings,
				config.FieldSummary:  g.summary,
			},
			Stored: model.StoredDocument{
				Title:          g.title,
				Slug:           g.id,
				Category:       g.category,
				CategorySlug:   g.categorySlug,
				Summary:        g.summary,
				Order:          i + 1,
				ContentPreview: g.content,
			},
		})
	}
	require.NoError(t, indexer.AddDocuments(docs))

	svc, err := NewService(invIdx, docStore, &settings)
	require.NoError(t, err)
	return svc
}

func resultIDs(results []model.SearchResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

// --- Test Cases ---

func TestNewService(t *testing.T) {
	settings := config.DefaultSearchSettings()
	invIdx := index.NewInvertedIndex(settings.SearchableFields)
	docStore := store.NewDocumentStore()

	_, err := NewService(invIdx, docStore, &settings)
	assert.NoError(t, err)

	_, err = NewService(nil, docStore, &settings)
	assert.Error(t, err)

	_, err = NewService(invIdx, nil, &settings)
	assert.Error(t, err)

	_, err = NewService(invIdx, docStore, nil)
	assert.Error(t, err)
}

func TestSearch_ShortQuery(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)

	for _, q := range []string{"", "m", "  m  ", "\t"} {
		resp, err := svc.Search(services.SearchQuery{Query: q})
		require.NoError(t, err)
		assert.Empty(t, resp.Results, "query %q", q)
		assert.NotNil(t, resp.Results)
		assert.Equal(t, 0, resp.Total)
		assert.Equal(t, q, resp.Query)
	}
}

func TestSearch_ExactTitleRanksFirst(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)

	for _, g := range testGuides {
		t.Run(g.id, func(t *testing.T) {
			resp, err := svc.Search(services.SearchQuery{Query: g.title})
			require.NoError(t, err)
			require.NotEmpty(t, resp.Results)
			assert.Equal(t, g.id, resp.Results[0].ID)
		})
	}
}

func TestSearch_EndToEndScenario(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)

	resp, err := svc.Search(services.SearchQuery{Query: "map"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)
	first := resp.Results[0]
	assert.Equal(t, "map-projections", first.ID)
	assert.Equal(t, "Map Projections", first.Title)
	assert.Equal(t, "<mark>Map</mark> Projections", first.HighlightedTitle)
	assert.Contains(t, first.Snippet, "map")
	assert.Equal(t, []string{config.FieldTitle, config.FieldContent}, first.Match["map"])
	assert.NotEmpty(t, resp.QueryId)

	resp, err = svc.Search(services.SearchQuery{Query: "xyzzynotfound"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Total)
}

func TestSearch_CategoryFilter(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)

	all, err := svc.Search(services.SearchQuery{Query: "palettes label map"})
	require.NoError(t, err)

	filtered, err := svc.Search(services.SearchQuery{Query: "palettes label map", Category: "design"})
	require.NoError(t, err)
	require.NotEmpty(t, filtered.Results)

	for _, r := range filtered.Results {
		assert.Equal(t, "design", r.CategorySlug)
	}
	assert.Subset(t, resultIDs(all.Results), resultIDs(filtered.Results))
	assert.NotContains(t, resultIDs(filtered.Results), "map-projections")

	none, err := svc.Search(services.SearchQuery{Query: "palettes", Category: "unknown"})
	require.NoError(t, err)
	assert.Empty(t, none.Results)
}

func TestSearch_LimitAndOrder(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)
	query := "map palettes label"

	full, err := svc.Search(services.SearchQuery{Query: query})
	require.NoError(t, err)
	require.Len(t, full.Results, 3)
	for i := 1; i < len(full.Results); i++ {
		assert.GreaterOrEqual(t, full.Results[i-1].Score, full.Results[i].Score)
	}

	limited, err := svc.Search(services.SearchQuery{Query: query, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, limited.Total)
	assert.Equal(t, resultIDs(full.Results)[:2], resultIDs(limited.Results))
}

func TestSearch_DefaultLimit(t *testing.T) {
	guides := make([]testGuide, 0, 15)
	for i := 0; i < 15; i++ {
		guides = append(guides, testGuide{
			id:           "atlas-" + string(rune('a'+i)),
			title:        "Atlas " + string(rune('a'+i)),
			category:     "Atlases",
			categorySlug: "atlases",
			content:      "atlas pages",
		})
	}
	svc := setupTestSearchService(t, guides)

	resp, err := svc.Search(services.SearchQuery{Query: "atlas"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, config.DefaultResultLimit)

	// Equal scores keep build order
	assert.Equal(t, "atlas-a", resp.Results[0].ID)
	assert.Equal(t, "atlas-b", resp.Results[1].ID)
}

func TestRank_FuzzyAndPrefix(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)

	t.Run("typo in query", func(t *testing.T) {
		hits := svc.Rank("projectons")
		require.NotEmpty(t, hits)
		assert.Equal(t, "map-projections", hits[0].ID)
		assert.Contains(t, hits[0].Match, "projections")
	})

	t.Run("prefix of indexed term", func(t *testing.T) {
		hits := svc.Rank("typo")
		require.NotEmpty(t, hits)
		assert.Equal(t, "typography-basics", hits[0].ID)
		assert.Equal(t, []string{config.FieldTitle}, hits[0].Match["typography"])
	})

	t.Run("exact beats prefix", func(t *testing.T) {
		hits := svc.Rank("map")
		require.GreaterOrEqual(t, len(hits), 1)
		assert.Equal(t, "map-projections", hits[0].ID)
		assert.Contains(t, hits[0].Match, "map")
		assert.Contains(t, hits[0].Match, "maps")
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, svc.Rank("qqqqqqqq"))
	})
}

func TestRank_PrefixDisabled(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)
	svc.settings.Prefix = false
	svc.settings.FuzzyFactor = 0

	assert.Empty(t, svc.Rank("typo"))
	assert.NotEmpty(t, svc.Rank("typography"))
}

func TestRank_MoreQueryTermsRankHigher(t *testing.T) {
	svc := setupTestSearchService(t, testGuides)

	hits := svc.Rank("sequential diverging")
	require.NotEmpty(t, hits)
	assert.Equal(t, "color-theory", hits[0].ID)
}
