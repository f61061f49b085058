package index

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestIndex builds a small index by hand: two documents over title and content.
func newTestIndex() *InvertedIndex {
	ii := NewInvertedIndex([]string{"title", "content"})
	ii.DocumentIDs[0] = "map-projections"
	ii.DocumentIDs[1] = "color-theory"
	ii.NextID = 2
	ii.FieldLengths[0] = map[string]int{"title": 2, "content": 6}
	ii.FieldLengths[1] = map[string]int{"title": 2, "content": 2}
	ii.Terms["map"] = PostingList{
		{DocID: 0, FieldName: "content", TermFreq: 2},
		{DocID: 0, FieldName: "title", TermFreq: 1},
	}
	ii.Terms["maps"] = PostingList{{DocID: 1, FieldName: "content", TermFreq: 1}}
	ii.Terms["color"] = PostingList{{DocID: 1, FieldName: "title", TermFreq: 1}}
	ii.Terms["mercator"] = PostingList{{DocID: 0, FieldName: "content", TermFreq: 1}}
	ii.Finalize()
	return ii
}

func TestFinalize(t *testing.T) {
	ii := newTestIndex()

	assert.Equal(t, 2, ii.DocumentCount())
	assert.InDelta(t, 2.0, ii.AverageFieldLength["title"], 1e-9)
	assert.InDelta(t, 4.0, ii.AverageFieldLength["content"], 1e-9)
	assert.Equal(t, []string{"color", "map", "maps", "mercator"}, ii.SortedTerms())

	// Postings are ordered by document, then by field order
	assert.Equal(t, "title", ii.Terms["map"][0].FieldName)
	assert.Equal(t, "content", ii.Terms["map"][1].FieldName)
}

func TestTermsWithPrefix(t *testing.T) {
	ii := newTestIndex()

	tests := []struct {
		prefix string
		want   []string
	}{
		{"ma", []string{"map", "maps"}},
		{"map", []string{"map", "maps"}},
		{"m", []string{"map", "maps", "mercator"}},
		{"x", []string{}},
		{"colorful", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got := ii.TermsWithPrefix(tt.prefix)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestFieldStatistics(t *testing.T) {
	ii := newTestIndex()

	assert.Equal(t, 1, ii.FieldDocumentFrequency("map", "title"))
	assert.Equal(t, 1, ii.FieldDocumentFrequency("map", "content"))
	assert.Equal(t, 0, ii.FieldDocumentFrequency("unknown", "title"))
	assert.Equal(t, 6, ii.FieldLength(0, "content"))
	assert.Equal(t, 0, ii.FieldLength(9, "content"))
	assert.True(t, ii.HasTerm("mercator"))
	assert.False(t, ii.HasTerm("merc"))
}

func TestValidate(t *testing.T) {
	ii := newTestIndex()
	require.NoError(t, ii.Validate())

	ii.Terms["ghost"] = PostingList{{DocID: 7, FieldName: "title", TermFreq: 1}}
	assert.Error(t, ii.Validate())

	ii = newTestIndex()
	ii.Terms["odd"] = PostingList{{DocID: 0, FieldName: "tags", TermFreq: 1}}
	assert.Error(t, ii.Validate())
}

func TestInvertedIndexJSON(t *testing.T) {
	ii := newTestIndex()

	data, err := json.Marshal(ii)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"documentCount":2`)
	assert.Contains(t, string(data), `{"d":0,"f":"title","tf":1}`)

	var decoded InvertedIndex
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ii.Fields, decoded.Fields)
	assert.Equal(t, ii.DocumentIDs, decoded.DocumentIDs)
	assert.Equal(t, ii.Terms, decoded.Terms)
	assert.Equal(t, ii.NextID, decoded.NextID)
	assert.Equal(t, ii.SortedTerms(), decoded.SortedTerms())
	assert.InDelta(t, 4.0, decoded.AverageFieldLength["content"], 1e-9)

	t.Run("count mismatch", func(t *testing.T) {
		bad := `{"documentCount":3,"fields":["title"],"documentIds":{"0":"a"},"terms":{}}`
		var idx InvertedIndex
		assert.Error(t, json.Unmarshal([]byte(bad), &idx))
	})
}
