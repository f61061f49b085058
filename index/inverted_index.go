package index

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// InvertedIndex maps each term to the documents and fields containing it, and
// keeps the per-field lengths needed for length-normalized scoring.
// It is built once by the indexer and read-only afterwards.
type InvertedIndex struct {
	Fields             []string                  // Searchable fields, in configuration order
	DocumentIDs        map[uint32]string         // Internal ID to document id (slug)
	FieldLengths       map[uint32]map[string]int // Token count per document per field
	AverageFieldLength map[string]float64        // Mean token count per field over all documents
	Terms              map[string]PostingList
	NextID             uint32

	sortedTerms []string // derived, for prefix lookups
}

// jsonInvertedIndexData is the serialized form. It excludes derived state.
type jsonInvertedIndexData struct {
	DocumentCount      int                       `json:"documentCount"`
	NextID             uint32                    `json:"nextId"`
	Fields             []string                  `json:"fields"`
	DocumentIDs        map[uint32]string         `json:"documentIds"`
	FieldLengths       map[uint32]map[string]int `json:"fieldLength"`
	AverageFieldLength map[string]float64        `json:"averageFieldLength"`
	Terms              map[string]PostingList    `json:"terms"`
}

// NewInvertedIndex creates an empty index over the given searchable fields.
func NewInvertedIndex(fields []string) *InvertedIndex {
	f := make([]string, len(fields))
	copy(f, fields)
	return &InvertedIndex{
		Fields:             f,
		DocumentIDs:        make(map[uint32]string),
		FieldLengths:       make(map[uint32]map[string]int),
		AverageFieldLength: make(map[string]float64),
		Terms:              make(map[string]PostingList),
	}
}

// DocumentCount returns the number of indexed documents.
func (ii *InvertedIndex) DocumentCount() int {
	return len(ii.DocumentIDs)
}

// FieldLength returns the token count of a field in a document.
func (ii *InvertedIndex) FieldLength(docID uint32, field string) int {
	return ii.FieldLengths[docID][field]
}

// FieldDocumentFrequency returns how many documents contain term in field.
func (ii *InvertedIndex) FieldDocumentFrequency(term, field string) int {
	count := 0
	for _, entry := range ii.Terms[term] {
		if entry.FieldName == field {
			count++
		}
	}
	return count
}

// HasTerm reports whether term is indexed.
func (ii *InvertedIndex) HasTerm(term string) bool {
	_, ok := ii.Terms[term]
	return ok
}

// SortedTerms returns all indexed terms in lexical order. Callers must not modify it.
func (ii *InvertedIndex) SortedTerms() []string {
	if ii.sortedTerms == nil {
		ii.Finalize()
	}
	return ii.sortedTerms
}

// TermsWithPrefix returns the indexed terms that start with prefix, in lexical order.
func (ii *InvertedIndex) TermsWithPrefix(prefix string) []string {
	terms := ii.SortedTerms()
	start := sort.SearchStrings(terms, prefix)
	end := start
	for end < len(terms) && strings.HasPrefix(terms[end], prefix) {
		end++
	}
	return terms[start:end]
}

// Finalize computes derived state: average field lengths, posting order and
// the sorted term list. The indexer calls it after the last document.
func (ii *InvertedIndex) Finalize() {
	fieldOrder := make(map[string]int, len(ii.Fields))
	for i, f := range ii.Fields {
		fieldOrder[f] = i
	}

	for term, postings := range ii.Terms {
		sort.Slice(postings, func(i, j int) bool {
			if postings[i].DocID != postings[j].DocID {
				return postings[i].DocID < postings[j].DocID
			}
			return fieldOrder[postings[i].FieldName] < fieldOrder[postings[j].FieldName]
		})
		ii.Terms[term] = postings
	}

	ii.AverageFieldLength = make(map[string]float64, len(ii.Fields))
	if n := len(ii.DocumentIDs); n > 0 {
		for _, field := range ii.Fields {
			total := 0
			for docID := range ii.DocumentIDs {
				total += ii.FieldLengths[docID][field]
			}
			ii.AverageFieldLength[field] = float64(total) / float64(n)
		}
	}

	terms := make([]string, 0, len(ii.Terms))
	for term := range ii.Terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	ii.sortedTerms = terms
}

// Validate checks that postings only reference known documents and fields.
func (ii *InvertedIndex) Validate() error {
	known := make(map[string]bool, len(ii.Fields))
	for _, f := range ii.Fields {
		known[f] = true
	}
	for term, postings := range ii.Terms {
		for _, entry := range postings {
			if _, ok := ii.DocumentIDs[entry.DocID]; !ok {
				return fmt.Errorf("term '%s' references unknown document %d", term, entry.DocID)
			}
			if !known[entry.FieldName] {
				return fmt.Errorf("term '%s' references unknown field '%s'", term, entry.FieldName)
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for InvertedIndex.
func (ii *InvertedIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonInvertedIndexData{
		DocumentCount:      len(ii.DocumentIDs),
		NextID:             ii.NextID,
		Fields:             ii.Fields,
		DocumentIDs:        ii.DocumentIDs,
		FieldLengths:       ii.FieldLengths,
		AverageFieldLength: ii.AverageFieldLength,
		Terms:              ii.Terms,
	})
}

// UnmarshalJSON implements json.Unmarshaler for InvertedIndex.
// Derived state is rebuilt, so a decoded index is ready for queries.
func (ii *InvertedIndex) UnmarshalJSON(data []byte) error {
	var decoded jsonInvertedIndexData
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	ii.Fields = decoded.Fields
	ii.DocumentIDs = decoded.DocumentIDs
	ii.FieldLengths = decoded.FieldLengths
	ii.Terms = decoded.Terms
	ii.NextID = decoded.NextID

	// Ensure maps are initialized if they were absent from the file
	if ii.DocumentIDs == nil {
		ii.DocumentIDs = make(map[uint32]string)
	}
	if ii.FieldLengths == nil {
		ii.FieldLengths = make(map[uint32]map[string]int)
	}
	if ii.Terms == nil {
		ii.Terms = make(map[string]PostingList)
	}
	if decoded.DocumentCount != len(ii.DocumentIDs) {
		return fmt.Errorf("index declares %d documents but maps %d ids", decoded.DocumentCount, len(ii.DocumentIDs))
	}

	ii.Finalize()
	return nil
}
