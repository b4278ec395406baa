package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fileviews/fileviews-mcp/catalog"
	"github.com/fileviews/fileviews-mcp/pathsearch"
)

// StatusArgs defines the input parameters for the fileviews_status tool (none required).
type StatusArgs struct{}

// StatusHandler holds the dependencies for the status tool.
type StatusHandler struct {
	Registry  *catalog.Registry
	PathIndex *pathsearch.Index
	StartTime time.Time
	RootDir   string
	Logger    *slog.Logger
}

// Handle processes a fileviews_status request.
func (h *StatusHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
	uptime := time.Since(h.StartTime)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	var builder strings.Builder
	builder.WriteString("=== fileviews-mcp Status ===\n\n")
	builder.WriteString(fmt.Sprintf("Root directory: %s\n", h.RootDir))
	builder.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(uptime)))
	builder.WriteString(fmt.Sprintf("Rebuilds completed: %d\n", h.Registry.Generation()))
	builder.WriteString(fmt.Sprintf("Path-search documents: %d\n", h.PathIndex.DocCount()))
	builder.WriteString(fmt.Sprintf("Memory usage: %s (heap: %s)\n",
		formatByteSize(int64(memStats.Alloc)),
		formatByteSize(int64(memStats.HeapAlloc)),
	))

	builder.WriteString("\nViews:\n")
	for _, name := range h.Registry.ViewNames() {
		records, err := h.Registry.Records(ctx, name)
		if err != nil {
			builder.WriteString(fmt.Sprintf("  %-16s error: %v\n", name, err))
			continue
		}
		builder.WriteString(fmt.Sprintf("  %-16s %d files\n", name, len(records)))
	}

	h.Logger.Info("fileviews_status",
		"rebuilds", h.Registry.Generation(),
		"memory", memStats.Alloc,
		"uptime", uptime,
	)

	return textResult(builder.String()), nil, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	totalMinutes := totalSeconds / 60
	remainderSeconds := totalSeconds % 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, remainderSeconds)
	}
	hours := totalMinutes / 60
	remainderMinutes := totalMinutes % 60
	return fmt.Sprintf("%dh%dm", hours, remainderMinutes)
}
