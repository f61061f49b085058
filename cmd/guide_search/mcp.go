package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/guide-search/internal/engine"
	"github.com/gcbaptista/guide-search/internal/mcpserver"
)

var mcpIndexPath string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve guide search as an MCP tool over stdio",
	Long: `Start a Model Context Protocol server exposing the search_guide tool.

The server speaks JSON-RPC on stdin and stdout, so all logging goes to stderr.

Client configuration:
  {
    "mcpServers": {
      "guide-search": {
        "command": "/path/to/guide_search",
        "args": ["mcp", "--index", "public/search/guide-index.json"]
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpIndexPath, "index", "", "Path of the index artifact")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("index") {
		appConfig.Index.Path = mcpIndexPath
	}
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	searchEngine := engine.NewEngine(engine.NewIndexCache(appConfig.Index.Path, searchSettings()), nil)
	return mcpserver.Run(ctx, mcpserver.New(searchEngine, version))
}
