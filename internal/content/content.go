// Package content reads guide source files from disk.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/internal/frontmatter"
	"github.com/gcbaptista/guide-search/model"
)

// ListDocuments parses every guide file directly inside dir, in file name order.
// The first file that fails to parse aborts the listing.
func ListDocuments(dir string) ([]model.ContentDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", dir, err)
	}

	docs := make([]model.ContentDocument, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsContentFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path) // #nosec G304 -- path is built from a directory listing
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		meta, body, err := frontmatter.Parse(entry.Name(), raw)
		if err != nil {
			return nil, err
		}

		docs = append(docs, model.ContentDocument{
			Slug:     meta.Slug,
			File:     entry.Name(),
			Metadata: meta,
			RawBody:  body,
		})
	}

	return docs, nil
}

// IsContentFile reports whether name has the guide content extension.
func IsContentFile(name string) bool {
	return filepath.Ext(name) == config.ContentFileExt
}

// SortGuides orders guides for listing: by display order, then by title.
// Guides without an order carry the sentinel and sort after ordered ones.
func SortGuides(docs []model.ContentDocument) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i].Metadata, docs[j].Metadata
		oa, ob := a.OrderOrDefault(config.DefaultOrder), b.OrderOrDefault(config.DefaultOrder)
		if oa != ob {
			return oa < ob
		}
		ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
		if ta != tb {
			return ta < tb
		}
		return a.Title < b.Title
	})
}
