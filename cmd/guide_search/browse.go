package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gcbaptista/guide-search/internal/client"
	"github.com/gcbaptista/guide-search/internal/tui"
)

// logFileEnv names a file that receives the log while the interactive client runs.
const logFileEnv = "GUIDE_SEARCH_LOG"

var errNotTerminal = errors.New("browse needs an interactive terminal")

var (
	browseEndpoint string
	browseSiteURL  string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search the guides interactively",
	Long: `Open an interactive search box backed by a running search endpoint.

Results update as you type. Use the arrow keys to move through results,
enter to open the selected guide in the browser, esc to close the results
and ctrl+u to clear the query.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseEndpoint, "endpoint", "", "Search endpoint URL")
	browseCmd.Flags().StringVar(&browseSiteURL, "site-url", "", "Base URL of the guide site")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		appConfig.Client.Endpoint = browseEndpoint
	}
	if flags.Changed("site-url") {
		appConfig.Client.SiteURL = browseSiteURL
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	if path := os.Getenv(logFileEnv); path != "" {
		f, err := tea.LogToFile(path, "guide_search")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := tui.New(client.New(appConfig.Client.Endpoint), tui.Options{
		SiteURL:  appConfig.Client.SiteURL,
		Debounce: appConfig.Debounce(),
	}).WithContext(contextOrBackground(cmd.Context()))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
