package tui

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Navigator opens a guide detail page.
type Navigator interface {
	Open(url string) error
}

// BrowserNavigator opens URLs with the operating system's browser command.
type BrowserNavigator struct{}

// Open starts the browser without waiting for it.
func (BrowserNavigator) Open(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// GuideURL returns the detail page of a guide: <site>/guide/<slug>.
func GuideURL(siteURL, slug string) string {
	return strings.TrimRight(siteURL, "/") + "/guide/" + url.PathEscape(slug)
}
