// Package mcpserver exposes guide search as an MCP tool.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gcbaptista/guide-search/config"
	"github.com/gcbaptista/guide-search/services"
)

// ToolName is the name of the search tool.
const ToolName = "search_guide"

// maxToolLimit caps the results a tool call may request.
const maxToolLimit = 50

// SearchGuideInput defines input for the search_guide tool
type SearchGuideInput struct {
	Query    string `json:"query" jsonschema:"Search text, at least 2 characters"`
	Category string `json:"category,omitempty" jsonschema:"Category slug to restrict results to (optional)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of results (optional, defaults to 10)"`
}

// GuideHit is one result of the search_guide tool
type GuideHit struct {
	Slug         string  `json:"slug"`
	Path         string  `json:"path"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	CategorySlug string  `json:"category_slug"`
	Summary      string  `json:"summary"`
	PublishedAt  string  `json:"published_at,omitempty"`
	Featured     bool    `json:"featured"`
	Snippet      string  `json:"snippet"`
	Score        float64 `json:"score"`
}

// SearchGuideOutput defines output for the search_guide tool
type SearchGuideOutput struct {
	Results []GuideHit `json:"results"`
	Total   int        `json:"total"`
	Query   string     `json:"query"`
}

type handlers struct {
	searcher services.Searcher
}

// New builds an MCP server with the search_guide tool registered.
func New(searcher services.Searcher, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "guide-search", Version: version}, nil)
	h := &handlers{searcher: searcher}

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        ToolName,
			Description: "Search the guide articles by title, headings, category, summary and content. Tolerates typos and partial words.",
		},
		h.searchGuide,
	)

	return server
}

// Run serves the MCP server over stdio until the client disconnects or ctx is done.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (h *handlers) searchGuide(ctx context.Context, _ *mcp.CallToolRequest, input SearchGuideInput) (*mcp.CallToolResult, SearchGuideOutput, error) {
	output := SearchGuideOutput{Results: []GuideHit{}, Query: input.Query}
	if len([]rune(strings.TrimSpace(input.Query))) < config.MinQueryLength {
		return nil, output, nil
	}

	limit := input.Limit
	if limit < 1 {
		limit = config.DefaultResultLimit
	}
	if limit > maxToolLimit {
		limit = maxToolLimit
	}

	resp, err := h.searcher.Search(ctx, services.SearchQuery{
		Query:    input.Query,
		Category: strings.TrimSpace(input.Category),
		Limit:    limit,
	})
	if err != nil {
		return nil, SearchGuideOutput{}, fmt.Errorf("guide search failed: %w", err)
	}

	for _, r := range resp.Results {
		output.Results = append(output.Results, GuideHit{
			Slug:         r.Slug,
			Path:         "/guide/" + r.Slug,
			Title:        r.Title,
			Category:     r.Category,
			CategorySlug: r.CategorySlug,
			Summary:      r.Summary,
			PublishedAt:  r.PublishedAt,
			Featured:     r.Featured,
			Snippet:      r.Snippet,
			Score:        r.Score,
		})
	}
	output.Total = len(output.Results)

	return nil, output, nil
}
