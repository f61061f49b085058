package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/guide-search/api"
	"github.com/gcbaptista/guide-search/internal/analytics"
	"github.com/gcbaptista/guide-search/internal/builder"
	"github.com/gcbaptista/guide-search/internal/engine"
)

const shutdownTimeout = 5 * time.Second

var (
	servePort       string
	serveIndexPath  string
	serveWatch      bool
	serveContentDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search endpoint",
	Long: `Serve GET /search and GET /api/guide/search from the index artifact.

The artifact is read on the first search and cached. With --watch the guide
sources are rebuilt on change and the cache is dropped after each rebuild.

The port comes from --port, then the PORT environment variable, then the
configuration file.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to run the server on")
	serveCmd.Flags().StringVar(&serveIndexPath, "index", "", "Path of the index artifact")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Rebuild the index when guides change")
	serveCmd.Flags().StringVar(&serveContentDir, "content-dir", "", "Directory holding the .mdx guides (with --watch)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	switch {
	case flags.Changed("port"):
		appConfig.Server.Port = servePort
	case os.Getenv("PORT") != "":
		appConfig.Server.Port = os.Getenv("PORT")
	}
	if flags.Changed("index") {
		appConfig.Index.Path = serveIndexPath
	}
	if flags.Changed("content-dir") {
		appConfig.Content.Dir = serveContentDir
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	settings := searchSettings()
	cache := engine.NewIndexCache(appConfig.Index.Path, settings)
	tracker := analytics.NewService(cache)
	searchEngine := engine.NewEngine(cache, tracker)

	if serveWatch {
		b := builder.New(settings)
		if _, err := b.Build(ctx, appConfig.Content.Dir, appConfig.Index.Path); err != nil {
			log.Printf("Warning: initial build failed, serving the existing index: %v", err)
		}
		go func() {
			err := b.Watch(ctx, appConfig.Content.Dir, appConfig.Index.Path, appConfig.WatchDelay(), func(stats builder.Stats) {
				searchEngine.Reset()
				log.Printf("Search index reloaded (%d guides)", stats.Documents)
			})
			if err != nil {
				log.Printf("Warning: content watcher stopped: %v", err)
			}
		}()
	}

	// Initialize Gin router
	router := gin.Default()
	api.SetupRoutes(router, searchEngine, tracker, appConfig.Server)

	server := &http.Server{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Using search index: %s", appConfig.Index.Path)
		log.Printf("Starting server on port %s...", appConfig.Server.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		log.Printf("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
