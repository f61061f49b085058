// Package frontmatter parses the YAML metadata block at the top of guide files.
//
// A guide file looks like:
//
//	---
//	title: Map Projections
//	category: Fundamentals
//	categorySlug: fundamentals
//	order: 2
//	---
//	Body text...
//
// The block is decoded into model.GuideMetadata with gopkg.in/yaml.v3 and
// checked field by field. Missing optional fields get explicit defaults;
// a missing title is an error.
package frontmatter

import (
	"bytes"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/guide-search/config"
	internalErrors "github.com/gcbaptista/guide-search/internal/errors"
	"github.com/gcbaptista/guide-search/model"
)

const delimiter = "---"

// Accepted publishedAt layouts.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Parse splits raw into frontmatter and body, decodes and validates the
// metadata and applies defaults. name is the source file name; its stem is
// the fallback slug.
func Parse(name string, raw []byte) (model.GuideMetadata, string, error) {
	var meta model.GuideMetadata

	block, body, ok := split(raw)
	if !ok {
		return meta, "", internalErrors.NewFrontmatterError(name, nil)
	}

	if err := yaml.Unmarshal(block, &meta); err != nil {
		return meta, "", internalErrors.NewFrontmatterError(name, err)
	}

	if err := Validate(name, &meta); err != nil {
		return meta, "", err
	}
	ApplyDefaults(&meta, Stem(name))

	return meta, body, nil
}

// Validate enforces the per-field rules. It trims string fields in place.
func Validate(name string, meta *model.GuideMetadata) error {
	meta.Title = strings.TrimSpace(meta.Title)
	meta.Slug = strings.TrimSpace(meta.Slug)
	meta.Category = strings.TrimSpace(meta.Category)
	meta.CategorySlug = strings.TrimSpace(meta.CategorySlug)
	meta.Summary = strings.TrimSpace(meta.Summary)
	meta.PublishedAt = strings.TrimSpace(meta.PublishedAt)

	if meta.Title == "" {
		return internalErrors.NewMetadataValidationError(name, config.FieldTitle, "is required")
	}
	if strings.ContainsAny(meta.Slug, "/\\ ") {
		return internalErrors.NewMetadataValidationError(name, config.FieldSlug, "must not contain slashes or spaces")
	}
	if meta.PublishedAt != "" && !validDate(meta.PublishedAt) {
		return internalErrors.NewMetadataValidationError(name, config.FieldPublishedAt, "must be a date like 2006-01-02")
	}
	return nil
}

// ApplyDefaults fills the optional fields: slug falls back to the file stem,
// a missing or zero order becomes the large sentinel so such guides sort last.
func ApplyDefaults(meta *model.GuideMetadata, stem string) {
	if meta.Slug == "" {
		meta.Slug = stem
	}
	order := meta.OrderOrDefault(config.DefaultOrder)
	meta.Order = &order
}

// Stem returns the file name without directory and content extension.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// split returns the YAML block and the body. The first non-blank line must be
// the opening delimiter and a later line must close it.
func split(raw []byte) ([]byte, string, bool) {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) || strings.TrimRight(lines[start], " \t") != delimiter {
		return nil, "", false
	}

	for end := start + 1; end < len(lines); end++ {
		if strings.TrimRight(lines[end], " \t") == delimiter {
			block := strings.Join(lines[start+1:end], "\n")
			body := strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
			return []byte(block), body, true
		}
	}
	return nil, "", false
}

func validDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
