package engine

import (
	"fmt"
	"time"

	"github.com/gcbaptista/guide-search/config"
	internalErrors "github.com/gcbaptista/guide-search/internal/errors"
	"github.com/gcbaptista/guide-search/internal/persistence"
	"github.com/gcbaptista/guide-search/internal/search"
	"github.com/gcbaptista/guide-search/services"
)

// IndexInstance is a loaded, immutable search index with its query service.
type IndexInstance struct {
	Artifact *persistence.Artifact
	Path     string
	LoadedAt time.Time
	searcher *search.Service
}

// loadIndexInstance reads the artifact at path and checks it against settings.
func loadIndexInstance(path string, settings *config.SearchSettings) (*IndexInstance, error) {
	artifact, err := persistence.LoadArtifact(path)
	if err != nil {
		return nil, err
	}

	if artifact.Version != persistence.ArtifactVersion {
		return nil, fmt.Errorf("%w: artifact version %d, expected %d",
			internalErrors.ErrIncompatibleIndex, artifact.Version, persistence.ArtifactVersion)
	}
	if !settings.SameFields(artifact.Index.Fields) {
		return nil, fmt.Errorf("%w: artifact fields %v, expected %v",
			internalErrors.ErrIncompatibleIndex, artifact.Index.Fields, settings.SearchableFields)
	}

	searcher, err := search.NewService(artifact.Index, artifact.Documents, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &IndexInstance{
		Artifact: artifact,
		Path:     path,
		LoadedAt: time.Now(),
		searcher: searcher,
	}, nil
}

// Search delegates to the underlying search service.
func (i *IndexInstance) Search(query services.SearchQuery) (services.SearchResponse, error) {
	return i.searcher.Search(query)
}

// DocumentCount returns the number of searchable guides.
func (i *IndexInstance) DocumentCount() int {
	return i.searcher.DocumentCount()
}
