package typoutil

import (
	"strconv"
	"sync"
)

// Typo is an indexed term within the edit budget of a query term.
type Typo struct {
	Term     string
	Distance int
}

// TypoFinder looks up indexed terms close to a query term, with a bounded cache.
// It is safe for concurrent use; the term list is fixed at construction.
type TypoFinder struct {
	indexedTerms []string

	cache        map[string][]Typo
	cacheMu      sync.RWMutex
	maxCacheSize int
}

// NewTypoFinder creates a typo finder over a copy of indexedTerms.
func NewTypoFinder(indexedTerms []string) *TypoFinder {
	terms := make([]string, len(indexedTerms))
	copy(terms, indexedTerms)
	return &TypoFinder{
		indexedTerms: terms,
		cache:        make(map[string][]Typo),
		maxCacheSize: 1000, // Limit cache to 1000 entries
	}
}

// Find returns every indexed term whose distance to term is between 1 and
// maxDistance, in indexed-term order. The term itself is never returned.
func (tf *TypoFinder) Find(term string, maxDistance int) []Typo {
	if maxDistance <= 0 || term == "" || len(tf.indexedTerms) == 0 {
		return []Typo{}
	}

	cacheKey := term + "\x00" + strconv.Itoa(maxDistance)
	tf.cacheMu.RLock()
	cached, exists := tf.cache[cacheKey]
	tf.cacheMu.RUnlock()
	if exists {
		return cached
	}

	typos := make([]Typo, 0)
	for _, indexedTerm := range tf.indexedTerms {
		if indexedTerm == term {
			continue
		}
		dist := CalculateDamerauLevenshteinDistanceWithLimit(term, indexedTerm, maxDistance)
		if dist > 0 && dist <= maxDistance {
			typos = append(typos, Typo{Term: indexedTerm, Distance: dist})
		}
	}

	tf.cacheMu.Lock()
	if len(tf.cache) < tf.maxCacheSize {
		tf.cache[cacheKey] = typos
	}
	tf.cacheMu.Unlock()

	return typos
}

// CacheSize reports how many lookups are cached.
func (tf *TypoFinder) CacheSize() int {
	tf.cacheMu.RLock()
	defer tf.cacheMu.RUnlock()
	return len(tf.cache)
}
