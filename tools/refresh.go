package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RefreshArgs defines the input parameters for the fileviews_refresh tool.
type RefreshArgs struct{}

// RefreshFunc invalidates and rebuilds all views. It is provided by main
// so the handler stays decoupled from the ignore matcher wiring.
type RefreshFunc func(ctx context.Context) (records int, elapsed string, err error)

// RefreshHandler holds the dependencies for the refresh tool.
type RefreshHandler struct {
	DoRefresh RefreshFunc
	Logger    *slog.Logger
}

// Handle processes a fileviews_refresh request.
func (h *RefreshHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args RefreshArgs) (*mcp.CallToolResult, any, error) {
	h.Logger.Info("fileviews_refresh started")

	records, elapsed, err := h.DoRefresh(ctx)
	if err != nil {
		h.Logger.Error("fileviews_refresh failed", "error", err)
		return errorResult(fmt.Sprintf("Refresh error: %v", err)), nil, nil
	}

	h.Logger.Info("fileviews_refresh complete", "records", records, "elapsed", elapsed)

	return textResult(fmt.Sprintf("refreshed: %d files in %s", records, elapsed)), nil, nil
}
