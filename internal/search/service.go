package search

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/index"
	"github.com/gcbaptista/guide-search/internal/tokenizer"
	"github.com/gcbaptista/guide-search/internal/typoutil"
	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/services"
	"github.com/gcbaptista/guide-search/store"
)

// prefixDistanceWeight scales how fast prefix matches lose weight as the indexed term grows
const prefixDistanceWeight = 0.3

// Service implements ranked search over a loaded guide index.
// It is safe for concurrent use; the index and store are read-only.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	settings      *config.SearchSettings
	bm25          *BM25Calculator
	typoFinder    *typoutil.TypoFinder // Typo finder with caching
}

// NewService creates a new search Service.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, settings *config.SearchSettings) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}

	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		settings:      settings,
		bm25:          NewBM25Calculator(invIndex),
		typoFinder:    typoutil.NewTypoFinder(invIndex.SortedTerms()),
	}, nil
}

// Search runs a query end to end: ranking, category filter, limit and enrichment.
func (s *Service) Search(query services.SearchQuery) (services.SearchResponse, error) {
	startTime := time.Now()
	response := services.SearchResponse{
		Results: []model.SearchResult{},
		Query:   query.Query,
		QueryId: uuid.New().String(),
	}

	trimmed := strings.TrimSpace(query.Query)
	if utf8.RuneCountInString(trimmed) < s.settings.MinQueryLength {
		response.Took = time.Since(startTime).Milliseconds()
		return response, nil
	}

	limit := query.Limit
	if limit <= 0 {
		limit = s.settings.DefaultLimit
	}

	for _, hit := range s.Rank(trimmed) {
		doc, ok := s.documentStore.Get(hit.ID)
		if !ok {
			log.Printf("Warning: Ranked document '%s' is missing from the document store.\n", hit.ID)
			continue
		}
		if query.Category != "" && doc.CategorySlug != query.Category {
			continue
		}

		snippetSource := doc.ContentPreview
		if snippetSource == "" {
			snippetSource = doc.Summary
		}

		response.Results = append(response.Results, model.SearchResult{
			StoredDocument:   doc,
			Score:            hit.Score,
			Match:            hit.Match,
			Snippet:          ExtractSnippet(snippetSource, trimmed, s.settings.SnippetLength),
			HighlightedTitle: HighlightText(doc.Title, trimmed),
		})
		if len(response.Results) == limit {
			break
		}
	}

	response.Total = len(response.Results)
	response.Took = time.Since(startTime).Milliseconds()
	return response, nil
}

// Rank scores every document matching at least one query token.
// Tokens combine with OR. Hits are ordered by score descending, then by build order.
func (s *Service) Rank(query string) []Hit {
	candidates := make(map[uint32]*candidateHit)

	for _, queryToken := range tokenizer.UniqueTokens(query) {
		for _, match := range s.expandQueryToken(queryToken) {
			postings := s.invertedIndex.Terms[match.term]
			dfByField := fieldDocumentFrequencies(postings)

			for _, entry := range postings {
				score := match.weight * s.settings.Boost(entry.FieldName) * s.bm25.CalculateBM25(entry, dfByField[entry.FieldName])

				candidate, exists := candidates[entry.DocID]
				if !exists {
					candidate = &candidateHit{
						queryTerms:   make(map[string]struct{}),
						fieldsByTerm: make(map[string]map[string]struct{}),
					}
					candidates[entry.DocID] = candidate
				}
				candidate.score += score
				candidate.queryTerms[queryToken] = struct{}{}
				if candidate.fieldsByTerm[match.term] == nil {
					candidate.fieldsByTerm[match.term] = make(map[string]struct{})
				}
				candidate.fieldsByTerm[match.term][entry.FieldName] = struct{}{}
			}
		}
	}

	hits := make([]Hit, 0, len(candidates))
	for docID, candidate := range candidates {
		hits = append(hits, Hit{
			DocID: docID,
			ID:    s.invertedIndex.DocumentIDs[docID],
			// Documents matching more distinct query tokens rank higher
			Score: candidate.score * float64(len(candidate.queryTerms)),
			Match: s.orderedMatch(candidate.fieldsByTerm),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].DocID < hits[j].DocID
	})
	return hits
}

// expandQueryToken returns the indexed terms a query token reaches: itself, its
// prefix extensions and its fuzzy neighbours, each with its weight. A term
// reached several ways keeps the first (highest) weight.
func (s *Service) expandQueryToken(queryToken string) []termMatch {
	queryLen := float64(utf8.RuneCountInString(queryToken))
	seen := make(map[string]bool)
	var matches []termMatch

	if s.invertedIndex.HasTerm(queryToken) {
		matches = append(matches, termMatch{term: queryToken, weight: 1})
		seen[queryToken] = true
	}

	if s.settings.Prefix {
		for _, term := range s.invertedIndex.TermsWithPrefix(queryToken) {
			if seen[term] {
				continue
			}
			termLen := float64(utf8.RuneCountInString(term))
			weight := s.settings.PrefixWeight * termLen / (termLen + prefixDistanceWeight*(termLen-queryLen))
			matches = append(matches, termMatch{term: term, weight: weight})
			seen[term] = true
		}
	}

	if maxDistance := s.settings.MaxEditDistance(int(queryLen)); maxDistance > 0 {
		for _, typo := range s.typoFinder.Find(queryToken, maxDistance) {
			if seen[typo.Term] {
				continue
			}
			termLen := float64(utf8.RuneCountInString(typo.Term))
			weight := s.settings.FuzzyWeight * termLen / (termLen + float64(typo.Distance))
			matches = append(matches, termMatch{term: typo.Term, weight: weight})
			seen[typo.Term] = true
		}
	}

	return matches
}

// orderedMatch converts the match sets to term -> fields, fields in searchable order
func (s *Service) orderedMatch(fieldsByTerm map[string]map[string]struct{}) map[string][]string {
	match := make(map[string][]string, len(fieldsByTerm))
	for term, fields := range fieldsByTerm {
		ordered := make([]string, 0, len(fields))
		for _, field := range s.settings.SearchableFields {
			if _, ok := fields[field]; ok {
				ordered = append(ordered, field)
			}
		}
		match[term] = ordered
	}
	return match
}

// DocumentCount returns the number of searchable documents.
func (s *Service) DocumentCount() int {
	return s.invertedIndex.DocumentCount()
}
