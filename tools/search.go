package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fileviews/fileviews-mcp/catalog"
	"github.com/fileviews/fileviews-mcp/pathsearch"
)

// SearchArgs defines the input parameters for the fileviews_search tool.
type SearchArgs struct {
	Query      string `json:"query" jsonschema:"Search terms matched against file names and path segments"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 50)"`
}

// SearchHandler holds the dependencies for the search tool. The path index
// is refreshed lazily from the registry's "all" view before each query.
type SearchHandler struct {
	Registry  *catalog.Registry
	PathIndex *pathsearch.Index
	Logger    *slog.Logger
}

// Handle processes a fileviews_search request.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("fileviews_search called with empty query")
		return errorResult("Error: query parameter is required"), nil, nil
	}

	// Records triggers the registry rebuild if dirty, so the generation
	// read afterwards describes the records we just fetched.
	records, err := h.Registry.Records(ctx, catalog.ViewAll)
	if err != nil {
		h.Logger.Error("fileviews_search failed to read registry", "error", err)
		return errorResult(fmt.Sprintf("Search error: %v", err)), nil, nil
	}
	rebuilt, err := h.PathIndex.SyncFrom(h.Registry.Generation(), records)
	if err != nil {
		h.Logger.Error("fileviews_search failed to sync path index", "error", err)
		return errorResult(fmt.Sprintf("Search error: %v", err)), nil, nil
	}

	matches, err := h.PathIndex.Search(args.Query, args.MaxResults)
	if err != nil {
		h.Logger.Error("fileviews_search failed", "query", args.Query, "error", err)
		return errorResult(fmt.Sprintf("Search error: %v", err)), nil, nil
	}

	h.Logger.Info("fileviews_search",
		"query", args.Query,
		"results", len(matches),
		"reindexed", rebuilt,
		"elapsed", time.Since(start),
	)

	return textResult(FormatMatches(matches)), nil, nil
}
