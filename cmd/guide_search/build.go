package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/guide-search/internal/builder"
)

var (
	buildContentDir string
	buildOutput     string
	buildWatch      bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the search index from the guide sources",
	Long: `Parse every .mdx guide in the content directory and write the search
index artifact. Any invalid guide aborts the build and leaves the previous
artifact untouched.

With --watch the index is rebuilt whenever a guide changes.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildContentDir, "content-dir", "", "Directory holding the .mdx guides")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Path of the index artifact")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "Rebuild on content changes until interrupted")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("content-dir") {
		appConfig.Content.Dir = buildContentDir
	}
	if flags.Changed("output") {
		appConfig.Index.Path = buildOutput
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := builder.New(searchSettings())
	stats, err := b.Build(ctx, appConfig.Content.Dir, appConfig.Index.Path)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d guides, %d terms, %d bytes in %v\n",
		stats.Documents, stats.Terms, stats.Bytes, stats.Duration)

	if !buildWatch {
		return nil
	}
	return b.Watch(ctx, appConfig.Content.Dir, appConfig.Index.Path, appConfig.WatchDelay(), nil)
}

// contextOrBackground guards commands executed without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
