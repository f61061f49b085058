// Package testing provides fixtures and helpers for testing guide search.
package testing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/guide-search/internal/builder"
)

// SampleGuides is a small corpus covering two categories, an unordered guide
// and MDX markup that must not reach the index.
var SampleGuides = map[string]string{
	"map-projections.mdx": `---
title: Map Projections
category: Cartography
categorySlug: cartography
summary: How flat maps represent a round earth.
order: 1
publishedAt: 2024-01-05
featured: true
---
import Figure from '../components/Figure';

# Why projections matter

Every map distorts the globe. The <Figure src="mercator.png" /> Mercator projection keeps angles.

## Equal area

Equal area projections keep size. See [the atlas](https://example.com/atlas).

` + "```js\nconst secretToken = 1;\n```\n",

	"color-theory.mdx": `---
title: Color Theory
category: Design
categorySlug: design
summary: Picking colors for thematic layers.
order: 2
publishedAt: 2024-03-10
---
# Sequential palettes

Sequential palettes suit **ordered** data.

# Diverging palettes

Diverging palettes highlight a midpoint.
`,

	"typography.mdx": `---
title: Typography Basics
slug: typography-basics
category: Design
categorySlug: design
---
# Label placement

Label placement and font hierarchy make a layout readable.
`,
}

// WriteGuide writes one guide file into dir.
func WriteGuide(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

// WriteCorpus writes guides into a fresh temporary directory and returns it.
func WriteCorpus(t *testing.T, guides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range guides {
		WriteGuide(t, dir, name, body)
	}
	return dir
}

// BuildIndex builds guides into an artifact in a temporary directory and returns the artifact path.
func BuildIndex(t *testing.T, guides map[string]string) string {
	t.Helper()
	sourceDir := WriteCorpus(t, guides)
	outputPath := filepath.Join(t.TempDir(), "search", "guide-index.json")
	_, err := builder.Build(context.Background(), sourceDir, outputPath)
	require.NoError(t, err)
	return outputPath
}

// BuildSampleIndex builds SampleGuides and returns the artifact path.
func BuildSampleIndex(t *testing.T) string {
	t.Helper()
	return BuildIndex(t, SampleGuides)
}
