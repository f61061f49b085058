package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gcbaptista/guide-search/model"
)

// DocumentStore keeps the display record of every indexed guide, keyed by id.
// Insertion order is preserved so the artifact lists documents in display order.
type DocumentStore struct {
	Mu    sync.RWMutex
	Docs  map[string]model.StoredDocument // Document id (slug) to stored fields
	Order []string                        // Ids in insertion order
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs: make(map[string]model.StoredDocument),
	}
}

// Put adds a document. Ids must be unique and non-empty.
func (ds *DocumentStore) Put(doc model.StoredDocument) error {
	ds.Mu.Lock()
	defer ds.Mu.Unlock()
	return ds.putUnsafe(doc)
}

func (ds *DocumentStore) putUnsafe(doc model.StoredDocument) error {
	if doc.ID == "" {
		return fmt.Errorf("stored document id cannot be empty")
	}
	if ds.Docs == nil {
		ds.Docs = make(map[string]model.StoredDocument)
	}
	if _, exists := ds.Docs[doc.ID]; exists {
		return fmt.Errorf("document with id '%s' already stored", doc.ID)
	}
	ds.Docs[doc.ID] = doc
	ds.Order = append(ds.Order, doc.ID)
	return nil
}

// Get returns the stored document for id.
func (ds *DocumentStore) Get(id string) (model.StoredDocument, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	doc, ok := ds.Docs[id]
	return doc, ok
}

// All returns every document in insertion order.
func (ds *DocumentStore) All() []model.StoredDocument {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	docs := make([]model.StoredDocument, 0, len(ds.Order))
	for _, id := range ds.Order {
		docs = append(docs, ds.Docs[id])
	}
	return docs
}

// Len returns the number of stored documents.
func (ds *DocumentStore) Len() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	return len(ds.Docs)
}

// MarshalJSON encodes the store as an ordered array of documents.
func (ds *DocumentStore) MarshalJSON() ([]byte, error) {
	return json.Marshal(ds.All())
}

// UnmarshalJSON rebuilds the store from an array of documents.
func (ds *DocumentStore) UnmarshalJSON(data []byte) error {
	var docs []model.StoredDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return err
	}

	ds.Mu.Lock()
	defer ds.Mu.Unlock()
	ds.Docs = make(map[string]model.StoredDocument, len(docs))
	ds.Order = make([]string, 0, len(docs))
	for _, doc := range docs {
		if err := ds.putUnsafe(doc); err != nil {
			return err
		}
	}
	return nil
}
