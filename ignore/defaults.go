package ignore

// DefaultPatterns are names and globs excluded from every walk. They cover
// directories and files that are never interesting as project metadata.
var DefaultPatterns = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Dependencies
	"node_modules",
	"vendor",
	"bower_components",

	// Build output
	"dist",
	"build",
	"out",
	"target",

	// IDE / Editor
	".idea",
	".vscode",
	"*.swp",
	"*~",

	// OS files
	".DS_Store",
	"Thumbs.db",

	// Python
	"__pycache__",
	".venv",
	"venv",

	// Caches
	".cache",
	".next",
	".nuxt",
	"coverage",

	// Logs
	"*.log",
}
