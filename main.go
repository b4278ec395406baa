package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fileviews/fileviews-mcp/catalog"
	"github.com/fileviews/fileviews-mcp/config"
	"github.com/fileviews/fileviews-mcp/fsys"
	"github.com/fileviews/fileviews-mcp/ignore"
	"github.com/fileviews/fileviews-mcp/pathsearch"
	"github.com/fileviews/fileviews-mcp/register"
	"github.com/fileviews/fileviews-mcp/server"
	"github.com/fileviews/fileviews-mcp/tools"
	"github.com/fileviews/fileviews-mcp/watcher"
)

// excludePatterns is a repeatable CLI flag for custom ignore patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run(register.DeriveServerName(os.Args[0]), os.Args[2:])
		return
	}

	var rootDir string
	var configPath string
	var fileLimit int
	var refreshSeconds int
	var logLevel string
	var logFile string
	var excludes excludePatterns

	flag.StringVar(&rootDir, "root", "", "Project root directory (default: current working directory)")
	flag.StringVar(&configPath, "config", "", "Config file path (default: <root>/fileviews.toml)")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.IntVar(&fileLimit, "file-limit", 0, "Maximum files visited per rebuild (default: 10000)")
	flag.IntVar(&refreshSeconds, "refresh-interval", 0, "Seconds between forced refreshes, 0 disables")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	flag.Parse()

	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	// Always log to a file or stderr, never stdout - stdout carries MCP stdio.
	if logFile == "" {
		logFile = filepath.Join(rootDir, "fileviews-mcp.log")
	}
	logger := setupLogger(logLevel, logFile)

	if configPath == "" {
		configPath = filepath.Join(rootDir, "fileviews.toml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if fileLimit <= 0 {
		fileLimit = cfg.FileLimit
	}

	logger.Info("starting fileviews-mcp",
		"root", rootDir,
		"fileLimit", fileLimit,
		"views", len(cfg.Views)+2,
	)

	startTime := time.Now()

	ignoreMatcher := ignore.NewMatcher(rootDir, append(cfg.Excludes, excludes...))

	registry := catalog.NewRegistry(catalog.Options{
		Roots:     catalog.StaticRoot(rootDir),
		Lister:    &fsys.DirLister{Ignore: ignoreMatcher},
		Logger:    logger,
		FileLimit: fileLimit,
		OnLimit: func(seen int) {
			logger.Warn("file limit reached, remaining tree not indexed", "seen", seen)
		},
	})
	if err := catalog.RegisterDefaults(registry); err != nil {
		logger.Error("failed to register built-in views", "error", err)
		os.Exit(1)
	}
	for _, v := range cfg.Views {
		pred, err := viewPredicate(v)
		if err != nil {
			logger.Error("invalid view in config", "view", v.Name, "error", err)
			os.Exit(1)
		}
		if err := registry.Register(v.Name, pred); err != nil {
			logger.Error("failed to register view", "view", v.Name, "error", err)
			os.Exit(1)
		}
	}

	// Warm the views so the first tool call is served from cache.
	if err := registry.Sync(context.Background()); err != nil {
		logger.Warn("initial rebuild incomplete", "error", err)
	}
	logger.Info("initial rebuild done", "duration", time.Since(startTime))

	pathIndex, err := pathsearch.New()
	if err != nil {
		logger.Error("failed to create path search index", "error", err)
		os.Exit(1)
	}
	defer pathIndex.Close()

	fileWatcher, err := watcher.New(rootDir, ignoreMatcher, logger)
	if err != nil {
		logger.Warn("failed to start file watcher, continuing without live invalidation", "error", err)
	} else {
		go fileWatcher.Start()
		go handleWatcherChanges(fileWatcher, registry, ignoreMatcher, logger)
		defer fileWatcher.Close()
	}

	if refreshSeconds > 0 {
		stop := make(chan struct{})
		defer close(stop)
		go runPeriodicRefresh(refreshSeconds, registry, logger, stop)
	}

	listHandler := &tools.ListHandler{Registry: registry, Logger: logger}
	findHandler := &tools.FindHandler{Registry: registry, Logger: logger}
	searchHandler := &tools.SearchHandler{Registry: registry, PathIndex: pathIndex, Logger: logger}
	statusHandler := &tools.StatusHandler{
		Registry:  registry,
		PathIndex: pathIndex,
		StartTime: startTime,
		RootDir:   rootDir,
		Logger:    logger,
	}
	refreshHandler := &tools.RefreshHandler{
		Logger: logger,
		DoRefresh: func(ctx context.Context) (int, string, error) {
			start := time.Now()
			ignoreMatcher.Reload()
			if err := registry.Refresh(ctx); err != nil {
				return 0, "", err
			}
			records, err := registry.Records(ctx, catalog.ViewAll)
			if err != nil {
				return 0, "", err
			}
			return len(records), time.Since(start).Round(time.Millisecond).String(), nil
		},
	}

	mcpServer := server.Setup(listHandler, findHandler, searchHandler, statusHandler, refreshHandler)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// viewPredicate maps a config view declaration to a catalog predicate.
func viewPredicate(v config.View) (catalog.Predicate, error) {
	switch v.Match {
	case "all":
		return catalog.AcceptAll(), nil
	case "ext":
		return catalog.ExtensionIs(v.Pattern), nil
	case "glob":
		return catalog.MatchesGlob(v.Pattern)
	}
	return nil, fmt.Errorf("unknown match kind %q", v.Match)
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
