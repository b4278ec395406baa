package tools

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fileviews/fileviews-mcp/catalog"
	"github.com/fileviews/fileviews-mcp/pathsearch"
)

// textResult wraps plain text in a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps an error message in a tool result flagged as an error.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// FormatRecords formats view records as human-readable text, one per line.
func FormatRecords(records []*catalog.FileRecord, nameOnly bool) string {
	if len(records) == 0 {
		return "No files matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d files:\n\n", len(records)))
	for _, record := range records {
		if nameOnly {
			builder.WriteString(record.Name())
		} else {
			builder.WriteString(fmt.Sprintf("  %s  (%s)", record.Name(), record.Path()))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatMatches formats path search hits as human-readable text.
func FormatMatches(matches []pathsearch.Match) string {
	if len(matches) == 0 {
		return "No matches found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matches:\n\n", len(matches)))
	for _, match := range matches {
		builder.WriteString(fmt.Sprintf("  %s\n", match.Path))
	}
	return builder.String()
}

// formatByteSize converts bytes to a human-readable string.
func formatByteSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
