package persistence

import (
	"fmt"

	"github.com/gcbaptista/guide-search/index"
	"github.com/gcbaptista/guide-search/store"
)

// ArtifactVersion is bumped whenever the artifact layout changes.
const ArtifactVersion = 1

// Artifact is the serialized search index shipped as a static file:
// the inverted index plus the display record of every document.
type Artifact struct {
	Version   int                  `json:"version"`
	Index     *index.InvertedIndex `json:"index"`
	Documents *store.DocumentStore `json:"documents"`
}

// NewArtifact wraps a built index and store in the current artifact version.
func NewArtifact(invIndex *index.InvertedIndex, docStore *store.DocumentStore) *Artifact {
	return &Artifact{
		Version:   ArtifactVersion,
		Index:     invIndex,
		Documents: docStore,
	}
}

// SaveArtifact atomically writes the artifact and returns its size in bytes.
func SaveArtifact(filePath string, artifact *Artifact) (int64, error) {
	return SaveJSON(filePath, artifact)
}

// LoadArtifact reads and structurally checks an artifact.
// A missing file is reported as os.ErrNotExist.
func LoadArtifact(filePath string) (*Artifact, error) {
	artifact := &Artifact{
		Index:     &index.InvertedIndex{},
		Documents: store.NewDocumentStore(),
	}
	if err := LoadJSON(filePath, artifact); err != nil {
		return nil, err
	}
	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("artifact %s is corrupt: %w", filePath, err)
	}
	return artifact, nil
}

// Validate checks that the index and the document list agree with each other.
func (a *Artifact) Validate() error {
	if a.Index == nil || a.Documents == nil {
		return fmt.Errorf("artifact is missing its index or documents")
	}
	if err := a.Index.Validate(); err != nil {
		return err
	}
	if a.Documents.Len() != a.Index.DocumentCount() {
		return fmt.Errorf("index has %d documents but %d are stored", a.Index.DocumentCount(), a.Documents.Len())
	}
	for internalID, docID := range a.Index.DocumentIDs {
		if _, ok := a.Documents.Get(docID); !ok {
			return fmt.Errorf("indexed document %d ('%s') has no stored record", internalID, docID)
		}
	}
	return nil
}
