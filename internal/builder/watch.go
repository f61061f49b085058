package builder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gcbaptista/guide-search/internal/content"
)

// Watch rebuilds the artifact whenever a guide file in sourceDir is created,
// changed, removed or renamed. Bursts of events within debounce trigger one
// rebuild. A failed rebuild is logged and the previous artifact stays in place.
// onBuild, if not nil, runs after every successful rebuild.
// Watch blocks until ctx is cancelled.
func (b *Builder) Watch(ctx context.Context, sourceDir, outputPath string, debounce time.Duration, onBuild func(Stats)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Printf("Warning: failed to close file watcher: %v", closeErr)
		}
	}()

	if err := watcher.Add(sourceDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", sourceDir, err)
	}
	log.Printf("✓ Watching %s for guide changes", sourceDir)

	var (
		timer   *time.Timer
		timerMu sync.Mutex
		buildMu sync.Mutex // one rebuild at a time
	)

	rebuild := func() {
		buildMu.Lock()
		defer buildMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		stats, err := b.Build(ctx, sourceDir, outputPath)
		if err != nil {
			log.Printf("Warning: rebuild failed, keeping previous search index: %v", err)
			return
		}
		if onBuild != nil {
			onBuild(stats)
		}
	}

	for {
		select {
		case <-ctx.Done():
			// Stop the pending debounce timer to prevent goroutine leaks
			timerMu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timerMu.Unlock()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantEvent(event) {
				continue
			}

			timerMu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, rebuild)
			timerMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Warning: file watcher error: %v", err)
		}
	}
}

// isRelevantEvent reports whether event touches a guide file in a way that changes the index.
func isRelevantEvent(event fsnotify.Event) bool {
	if !content.IsContentFile(event.Name) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
