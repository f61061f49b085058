package indexing

import (
	"reflect"
	"testing"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/index"
	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/store"
)

func newTestService(t *testing.T) (*Service, *index.InvertedIndex, *store.DocumentStore) {
	t.Helper()
	settings := config.DefaultSearchSettings()
	invIdx := index.NewInvertedIndex(settings.SearchableFields)
	docStore := store.NewDocumentStore()
	svc, err := NewService(invIdx, docStore, &settings)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc, invIdx, docStore
}

func guideDoc(id, title, content string) model.IndexDocument {
	return model.IndexDocument{
		ID: id,
		Fields: map[string]string{
			config.FieldTitle:    title,
			config.FieldContent:  content,
			config.FieldCategory: "Cartography",
			config.FieldHeadings: "",
			config.FieldSummary:  "",
		},
		Stored: model.StoredDocument{Title: title, Slug: id},
	}
}

func TestNewService(t *testing.T) {
	settings := config.DefaultSearchSettings()

	t.Run("valid initialization", func(t *testing.T) {
		_, err := NewService(index.NewInvertedIndex(settings.SearchableFields), store.NewDocumentStore(), &settings)
		if err != nil {
			t.Errorf("NewService() error = %v, wantErr nil", err)
		}
	})

	t.Run("nil inverted index", func(t *testing.T) {
		if _, err := NewService(nil, store.NewDocumentStore(), &settings); err == nil {
			t.Error("NewService() with nil invertedIndex, wantErr, got nil")
		}
	})

	t.Run("nil document store", func(t *testing.T) {
		if _, err := NewService(index.NewInvertedIndex(settings.SearchableFields), nil, &settings); err == nil {
			t.Error("NewService() with nil documentStore, wantErr, got nil")
		}
	})

	t.Run("nil settings", func(t *testing.T) {
		if _, err := NewService(index.NewInvertedIndex(settings.SearchableFields), store.NewDocumentStore(), nil); err == nil {
			t.Error("NewService() with nil settings, wantErr, got nil")
		}
	})

	t.Run("field mismatch", func(t *testing.T) {
		if _, err := NewService(index.NewInvertedIndex([]string{"title"}), store.NewDocumentStore(), &settings); err == nil {
			t.Error("NewService() with mismatched fields, wantErr, got nil")
		}
	})
}

func TestAddDocuments(t *testing.T) {
	svc, invIdx, docStore := newTestService(t)

	err := svc.AddDocuments([]model.IndexDocument{
		guideDoc("map-projections", "Map Projections", "Mercator map map"),
		guideDoc("color-theory", "Color Theory", "Palettes for maps"),
	})
	if err != nil {
		t.Fatalf("AddDocuments() error = %v", err)
	}

	if svc.DocumentCount() != 2 {
		t.Errorf("DocumentCount() = %d, want 2", svc.DocumentCount())
	}
	if docStore.Len() != 2 {
		t.Errorf("docStore.Len() = %d, want 2", docStore.Len())
	}

	wantMap := index.PostingList{
		{DocID: 0, FieldName: config.FieldTitle, TermFreq: 1},
		{DocID: 0, FieldName: config.FieldContent, TermFreq: 2},
	}
	if got := invIdx.Terms["map"]; !reflect.DeepEqual(got, wantMap) {
		t.Errorf("postings for 'map' = %v, want %v", got, wantMap)
	}
	if got := invIdx.FieldLength(0, config.FieldContent); got != 3 {
		t.Errorf("content length of doc 0 = %d, want 3", got)
	}
	if got := invIdx.AverageFieldLength[config.FieldTitle]; got != 2 {
		t.Errorf("average title length = %v, want 2", got)
	}

	stored, ok := docStore.Get("color-theory")
	if !ok || stored.ID != "color-theory" || stored.Title != "Color Theory" {
		t.Errorf("stored record = %+v, ok=%v", stored, ok)
	}

	if got := invIdx.TermsWithPrefix("map"); !reflect.DeepEqual(got, []string{"map", "maps"}) {
		t.Errorf("TermsWithPrefix(map) = %v", got)
	}
}

func TestAddDocuments_Errors(t *testing.T) {
	tests := []struct {
		name string
		docs []model.IndexDocument
	}{
		{"empty id", []model.IndexDocument{guideDoc("  ", "T", "c")}},
		{"duplicate id", []model.IndexDocument{guideDoc("a", "T", "c"), guideDoc("a", "U", "d")}},
		{"stored id mismatch", []model.IndexDocument{{ID: "a", Stored: model.StoredDocument{ID: "b"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			if err := svc.AddDocuments(tt.docs); err == nil {
				t.Errorf("AddDocuments() wantErr, got nil")
			}
		})
	}
}

func TestAddDocuments_MissingFieldIsEmpty(t *testing.T) {
	svc, invIdx, _ := newTestService(t)
	doc := model.IndexDocument{ID: "bare", Fields: map[string]string{config.FieldTitle: "Only Title"}}

	if err := svc.AddDocuments([]model.IndexDocument{doc}); err != nil {
		t.Fatalf("AddDocuments() error = %v", err)
	}
	if got := invIdx.FieldLength(0, config.FieldContent); got != 0 {
		t.Errorf("content length = %d, want 0", got)
	}
	if err := invIdx.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
