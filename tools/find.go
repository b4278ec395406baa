package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fileviews/fileviews-mcp/catalog"
)

// FindArgs defines the input parameters for the fileviews_find tool.
type FindArgs struct {
	Name string `json:"name" jsonschema:"Exact base filename to look up (e.g. style.css)"`
	View string `json:"view,omitempty" jsonschema:"View name to search in (default: all)"`
}

// FindHandler holds the dependencies for the find tool.
type FindHandler struct {
	Registry *catalog.Registry
	Logger   *slog.Logger
}

// Handle processes a fileviews_find request. Duplicate filenames at
// different paths are all returned, in discovery order.
func (h *FindHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FindArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Name == "" {
		h.Logger.Warn("fileviews_find called with empty name")
		return errorResult("Error: name parameter is required"), nil, nil
	}

	viewName := args.View
	if viewName == "" {
		viewName = catalog.ViewAll
	}

	records, err := h.Registry.RecordsByName(ctx, viewName, args.Name)
	if err != nil {
		h.Logger.Error("fileviews_find failed", "view", viewName, "name", args.Name, "error", err)
		return errorResult(fmt.Sprintf("Find error: %v", err)), nil, nil
	}

	h.Logger.Info("fileviews_find",
		"view", viewName,
		"name", args.Name,
		"results", len(records),
		"elapsed", time.Since(start),
	)

	return textResult(FormatRecords(records, false)), nil, nil
}
