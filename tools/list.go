package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fileviews/fileviews-mcp/catalog"
)

// ListArgs defines the input parameters for the fileviews_list tool.
type ListArgs struct {
	View       string `json:"view,omitempty" jsonschema:"View name to list (default: all)"`
	Glob       string `json:"glob,omitempty" jsonschema:"Optional glob pattern applied to file names (e.g. *.min.css)"`
	NameOnly   bool   `json:"nameOnly,omitempty" jsonschema:"If true return only file names without paths"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 100)"`
}

// ListHandler holds the dependencies for the list tool.
type ListHandler struct {
	Registry *catalog.Registry
	Logger   *slog.Logger
}

// Handle processes a fileviews_list request.
func (h *ListHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ListArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	viewName := args.View
	if viewName == "" {
		viewName = catalog.ViewAll
	}

	var records []*catalog.FileRecord
	var err error

	if args.Glob != "" {
		pattern := strings.ReplaceAll(args.Glob, "\\", "/")
		if !doublestar.ValidatePattern(pattern) {
			return errorResult(fmt.Sprintf("Error: invalid glob pattern: %s", args.Glob)), nil, nil
		}
		records, err = h.Registry.FilteredRecords(ctx, viewName, func(name string) bool {
			matched, matchErr := doublestar.Match(pattern, name)
			return matchErr == nil && matched
		})
	} else {
		records, err = h.Registry.Records(ctx, viewName)
	}
	if err != nil {
		h.Logger.Error("fileviews_list failed", "view", viewName, "error", err)
		return errorResult(fmt.Sprintf("List error: %v", err)), nil, nil
	}

	maxResults := args.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}
	truncated := false
	if len(records) > maxResults {
		records = records[:maxResults]
		truncated = true
	}

	h.Logger.Info("fileviews_list",
		"view", viewName,
		"glob", args.Glob,
		"results", len(records),
		"elapsed", time.Since(start),
	)

	output := FormatRecords(records, args.NameOnly)
	if truncated {
		output += fmt.Sprintf("\n(truncated to %d results)\n", maxResults)
	}
	return textResult(output), nil, nil
}
