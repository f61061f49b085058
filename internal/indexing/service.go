package indexing

import (
	"fmt"
	"log"
	"strings"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/index"
	"github.com/gcbaptista/guide-search/internal/tokenizer"
	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/store"
)

// Service builds an inverted index and its document store from guide documents.
// It is used once per build; the resulting index is immutable.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	settings      *config.SearchSettings
}

// NewService creates a new indexing Service.
// The index must have been created for the same searchable fields as settings.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore, settings *config.SearchSettings) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("search settings cannot be nil")
	}
	if !settings.SameFields(invertedIndex.Fields) {
		return nil, fmt.Errorf("inverted index fields %v do not match searchable fields %v", invertedIndex.Fields, settings.SearchableFields)
	}
	if invertedIndex.Terms == nil {
		// Initialize the map if it's nil to prevent panics later
		invertedIndex.Terms = make(map[string]index.PostingList)
	}
	if invertedIndex.DocumentIDs == nil {
		invertedIndex.DocumentIDs = make(map[uint32]string)
	}
	if invertedIndex.FieldLengths == nil {
		invertedIndex.FieldLengths = make(map[uint32]map[string]int)
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[string]model.StoredDocument)
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		settings:      settings,
	}, nil
}

// AddDocuments indexes a batch of documents and finalizes the index.
// The batch is rejected on the first invalid or duplicate id.
func (s *Service) AddDocuments(docs []model.IndexDocument) error {
	s.documentStore.Mu.Lock()
	defer s.documentStore.Mu.Unlock()

	for _, doc := range docs {
		if err := s.addSingleDocumentUnsafe(doc); err != nil {
			return fmt.Errorf("failed to add document ID %s: %w", doc.ID, err)
		}
	}

	s.invertedIndex.Finalize()
	return nil
}

// addSingleDocumentUnsafe assumes the caller holds the document store lock.
func (s *Service) addSingleDocumentUnsafe(doc model.IndexDocument) error {
	docID := strings.TrimSpace(doc.ID)
	if docID == "" {
		return fmt.Errorf("document id cannot be empty or whitespace-only")
	}
	if _, exists := s.documentStore.Docs[docID]; exists {
		return fmt.Errorf("document id '%s' is already indexed", docID)
	}

	stored := doc.Stored
	if stored.ID == "" {
		stored.ID = docID
	} else if stored.ID != docID {
		return fmt.Errorf("stored record id '%s' does not match document id '%s'", stored.ID, docID)
	}

	internalID := s.invertedIndex.NextID
	s.invertedIndex.NextID++
	s.invertedIndex.DocumentIDs[internalID] = docID
	s.documentStore.Docs[docID] = stored
	s.documentStore.Order = append(s.documentStore.Order, docID)

	lengths := make(map[string]int, len(s.settings.SearchableFields))
	for _, fieldName := range s.settings.SearchableFields {
		text, ok := doc.Fields[fieldName]
		if !ok {
			log.Printf("Warning: Searchable field '%s' not found in document '%s'.\n", fieldName, docID)
		}

		termFrequencies, length := tokenizer.TermFrequencies(text)
		lengths[fieldName] = length

		for token, freqInField := range termFrequencies {
			s.invertedIndex.Terms[token] = append(s.invertedIndex.Terms[token], index.PostingEntry{
				DocID:     internalID,
				FieldName: fieldName,
				TermFreq:  freqInField,
			})
		}
	}
	s.invertedIndex.FieldLengths[internalID] = lengths

	return nil
}

// DocumentCount returns how many documents have been indexed.
func (s *Service) DocumentCount() int {
	return s.invertedIndex.DocumentCount()
}
