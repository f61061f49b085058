package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/guide-search/config"
)

var version = "1.0.0"

const defaultConfigFile = "guide-search.toml"

var (
	configPath string
	appConfig  = config.DefaultAppConfig()
)

var rootCmd = &cobra.Command{
	Use:   "guide_search",
	Short: "Full-text search for the guide articles",
	Long: `guide_search builds a search index from the guide's MDX articles and
answers typo-tolerant, prefix-aware queries against it.

Examples:
  guide_search build                     # Build public/search/guide-index.json
  guide_search serve --port 9000         # Serve GET /search on port 9000
  guide_search serve --watch             # Serve and rebuild on content changes
  guide_search browse                    # Interactive search in the terminal`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadAppConfig(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigFile, "Path to a TOML configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// searchSettings returns the shared search settings used by every command.
func searchSettings() *config.SearchSettings {
	settings := config.DefaultSearchSettings()
	return &settings
}
