package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gcbaptista/guide-search/config"
	internalErrors "github.com/gcbaptista/guide-search/internal/errors"
)

// IndexCache loads the search artifact on first use and keeps it for the
// life of the process. Reads after the first successful load are lock-free.
// Failed loads are not cached; the next call tries again.
type IndexCache struct {
	path     string
	settings *config.SearchSettings

	current atomic.Pointer[IndexInstance]
	loadMu  sync.Mutex // serializes loads
	loads   int        // successful loads, guarded by loadMu
}

// NewIndexCache creates a cache for the artifact at path, checked against settings.
func NewIndexCache(path string, settings *config.SearchSettings) *IndexCache {
	if settings == nil {
		defaults := config.DefaultSearchSettings()
		settings = &defaults
	}
	return &IndexCache{path: path, settings: settings}
}

// GetOrLoad returns the cached index, loading it if needed.
// Concurrent first callers wait for a single load and share its result.
// Failures are returned as *errors.IndexUnavailableError.
func (c *IndexCache) GetOrLoad(ctx context.Context) (*IndexInstance, error) {
	if instance := c.current.Load(); instance != nil {
		return instance, nil
	}

	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	// Another caller may have finished loading while we waited
	if instance := c.current.Load(); instance != nil {
		return instance, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, internalErrors.NewIndexUnavailableError(c.path, err)
	}

	instance, err := loadIndexInstance(c.path, c.settings)
	if err != nil {
		log.Printf("Warning: Failed to load search index from %s: %v", c.path, err)
		return nil, internalErrors.NewIndexUnavailableError(c.path, err)
	}

	c.current.Store(instance)
	c.loads++
	log.Printf("Successfully loaded search index from %s (%d documents)", c.path, instance.DocumentCount())
	return instance, nil
}

// Loaded reports whether an index is currently cached.
func (c *IndexCache) Loaded() bool {
	return c.current.Load() != nil
}

// Reset drops the cached index so the next call reloads it from disk.
func (c *IndexCache) Reset() {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	c.current.Store(nil)
}

// DocumentCount returns the number of loaded guides, 0 while nothing is loaded.
func (c *IndexCache) DocumentCount() int {
	if instance := c.current.Load(); instance != nil {
		return instance.DocumentCount()
	}
	return 0
}

// Path returns the artifact location.
func (c *IndexCache) Path() string {
	return c.path
}

// Settings returns the search settings the cache checks artifacts against.
func (c *IndexCache) Settings() *config.SearchSettings {
	return c.settings
}
