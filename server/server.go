package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fileviews/fileviews-mcp/tools"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	listHandler *tools.ListHandler,
	findHandler *tools.FindHandler,
	searchHandler *tools.SearchHandler,
	statusHandler *tools.StatusHandler,
	refreshHandler *tools.RefreshHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fileviews-mcp",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server maintains named, lazily-rebuilt views over the project's file tree. Views are cached in memory and rebuilt only after the tree changes, so queries are much faster than walking the filesystem with find or ls.

Built-in views:
- "all": every file under the project root
- "css": files with a .css extension

Use fileviews_list to enumerate a view, fileviews_find for exact filename lookups, and fileviews_search for fuzzy matching over names and path segments. The views refresh automatically when files change.`,
		},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "fileviews_list",
		Description: `List the files in a named view, optionally filtered by a glob on the base filename.

Examples:
  - view "all": every indexed file
  - view "css": only .css files
  - view "css", glob "*.min.css": minified stylesheets only`,
	}, listHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "fileviews_find",
		Description: `Find files by exact base filename. Returns every path carrying that name, in the order the walk discovered them.`,
	}, findHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "fileviews_search",
		Description: `Search file names and path segments with word-level matching (e.g. "theme" matches styles/theme.css). Only path metadata is indexed, never file contents.`,
	}, searchHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "fileviews_status",
		Description: "Show registry status: root, per-view file counts, rebuild count, memory usage, and uptime.",
	}, statusHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "fileviews_refresh",
		Description: "Invalidate all views and rebuild them from a fresh walk. Also reloads .gitignore rules.",
	}, refreshHandler.Handle)

	return mcpServer
}
