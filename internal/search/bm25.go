package search

import (
	"math"

	"github.com/gcbaptista/guide-search/index"
)

// BM25+ parameters
const (
	bm25K1    = 1.2 // Controls term frequency saturation
	bm25B     = 0.7 // Controls how much effect field length has
	bm25Delta = 0.5 // Lower bound on the contribution of any matching term
)

// BM25Calculator handles BM25+ score calculations over per-field statistics
type BM25Calculator struct {
	invertedIndex *index.InvertedIndex
}

// NewBM25Calculator creates a new BM25 calculator
func NewBM25Calculator(invIndex *index.InvertedIndex) *BM25Calculator {
	return &BM25Calculator{invertedIndex: invIndex}
}

// calculateIDF calculates the inverse document frequency of a term within one field
// IDF = ln(1 + (N - df + 0.5) / (df + 0.5)) where N = total documents, df = documents with the term in that field
func (calc *BM25Calculator) calculateIDF(fieldDocFreq int) float64 {
	totalDocs := float64(calc.invertedIndex.DocumentCount())
	df := float64(fieldDocFreq)
	return math.Log(1 + (totalDocs-df+0.5)/(df+0.5))
}

// CalculateBM25 scores one posting given the number of documents containing the term in the same field.
// BM25+ = IDF * (δ + tf * (k1 + 1) / (tf + k1 * (1 - b + b * (|f| / avgfl))))
func (calc *BM25Calculator) CalculateBM25(entry index.PostingEntry, fieldDocFreq int) float64 {
	if entry.TermFreq <= 0 {
		return 0.0
	}

	tf := float64(entry.TermFreq)
	fieldLength := float64(calc.invertedIndex.FieldLength(entry.DocID, entry.FieldName))
	avgFieldLength := calc.invertedIndex.AverageFieldLength[entry.FieldName]

	lengthRatio := 1.0
	if avgFieldLength > 0 {
		lengthRatio = fieldLength / avgFieldLength
	}

	tfComponent := bm25Delta + (tf*(bm25K1+1))/(tf+bm25K1*(1-bm25B+bm25B*lengthRatio))
	return calc.calculateIDF(fieldDocFreq) * tfComponent
}

// fieldDocumentFrequencies counts, per field, the documents a posting list covers
func fieldDocumentFrequencies(postings index.PostingList) map[string]int {
	counts := make(map[string]int)
	for _, entry := range postings {
		counts[entry.FieldName]++
	}
	return counts
}
