// Package builder turns a directory of guide files into the search artifact.
package builder

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/index"
	"github.com/gcbaptista/guide-search/internal/content"
	internalErrors "github.com/gcbaptista/guide-search/internal/errors"
	"github.com/gcbaptista/guide-search/internal/extract"
	"github.com/gcbaptista/guide-search/internal/indexing"
	"github.com/gcbaptista/guide-search/internal/persistence"
	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/store"
)

// Stats summarizes one build.
type Stats struct {
	Documents int
	Terms     int
	Bytes     int64
	Duration  time.Duration
}

// Builder builds artifacts with fixed search settings.
type Builder struct {
	settings *config.SearchSettings
}

// New creates a Builder. A nil settings uses the default search settings.
func New(settings *config.SearchSettings) *Builder {
	if settings == nil {
		defaults := config.DefaultSearchSettings()
		settings = &defaults
	}
	return &Builder{settings: settings}
}

// Build indexes every guide in sourceDir with the default search settings and writes the artifact.
func Build(ctx context.Context, sourceDir, outputPath string) (Stats, error) {
	return New(nil).Build(ctx, sourceDir, outputPath)
}

// Build indexes every guide in sourceDir and atomically writes the artifact to outputPath.
// Any invalid guide aborts the build and leaves an existing artifact untouched.
func (b *Builder) Build(ctx context.Context, sourceDir, outputPath string) (Stats, error) {
	startTime := time.Now()
	var stats Stats

	if problems := b.settings.Validate(); len(problems) > 0 {
		return stats, fmt.Errorf("invalid search settings: %s", strings.Join(problems, "; "))
	}

	guides, err := content.ListDocuments(sourceDir)
	if err != nil {
		return stats, fmt.Errorf("failed to read guides from %s: %w", sourceDir, err)
	}
	if err := checkDuplicateSlugs(guides); err != nil {
		return stats, err
	}
	content.SortGuides(guides)
	log.Printf("✓ Parsed %d guides from %s", len(guides), sourceDir)

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	invIndex := index.NewInvertedIndex(b.settings.SearchableFields)
	docStore := store.NewDocumentStore()
	indexer, err := indexing.NewService(invIndex, docStore, b.settings)
	if err != nil {
		return stats, fmt.Errorf("failed to create indexer: %w", err)
	}

	docs := make([]model.IndexDocument, 0, len(guides))
	for _, guide := range guides {
		docs = append(docs, b.toIndexDocument(guide))
	}
	if err := indexer.AddDocuments(docs); err != nil {
		return stats, fmt.Errorf("failed to index guides: %w", err)
	}
	log.Printf("✓ Indexed %d guides (%d terms)", invIndex.DocumentCount(), len(invIndex.Terms))

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	size, err := persistence.SaveArtifact(outputPath, persistence.NewArtifact(invIndex, docStore))
	if err != nil {
		return stats, fmt.Errorf("failed to write search index: %w", err)
	}

	stats = Stats{
		Documents: invIndex.DocumentCount(),
		Terms:     len(invIndex.Terms),
		Bytes:     size,
		Duration:  time.Since(startTime),
	}
	log.Printf("✓ Search index written to %s (%d bytes, %v)", outputPath, stats.Bytes, stats.Duration.Round(time.Millisecond))
	return stats, nil
}

// toIndexDocument extracts the searchable text and display record of one guide.
func (b *Builder) toIndexDocument(guide model.ContentDocument) model.IndexDocument {
	meta := guide.Metadata
	cleaned := extract.Clean(guide.RawBody)

	return model.IndexDocument{
		ID: guide.Slug,
		Fields: map[string]string{
			config.FieldTitle:    meta.Title,
			config.FieldContent:  extract.TruncateWords(cleaned, b.settings.ContentWordLimit),
			config.FieldCategory: meta.Category,
			config.FieldHeadings: strings.Join(extract.Headings(guide.RawBody), " "),
			config.FieldSummary:  meta.Summary,
		},
		Stored: model.StoredDocument{
			ID:             guide.Slug,
			Title:          meta.Title,
			Slug:           guide.Slug,
			Category:       meta.Category,
			CategorySlug:   meta.CategorySlug,
			Summary:        meta.Summary,
			Order:          meta.OrderOrDefault(config.DefaultOrder),
			PublishedAt:    meta.PublishedAt,
			Featured:       meta.Featured,
			ContentPreview: extract.Preview(cleaned, b.settings.PreviewLength),
		},
	}
}

// checkDuplicateSlugs rejects two files resolving to the same id.
func checkDuplicateSlugs(guides []model.ContentDocument) error {
	filesBySlug := make(map[string][]string, len(guides))
	for _, guide := range guides {
		filesBySlug[guide.Slug] = append(filesBySlug[guide.Slug], guide.File)
	}
	for _, guide := range guides {
		if files := filesBySlug[guide.Slug]; len(files) > 1 {
			return internalErrors.NewDuplicateSlugError(guide.Slug, files...)
		}
	}
	return nil
}
