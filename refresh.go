package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fileviews/fileviews-mcp/catalog"
	"github.com/fileviews/fileviews-mcp/ignore"
	"github.com/fileviews/fileviews-mcp/watcher"
)

// handleWatcherChanges marks the registry dirty whenever the tree changes,
// so the next query rebuilds the views. Edits to .gitignore additionally
// reload the ignore rules before invalidating.
func handleWatcherChanges(
	fileWatcher *watcher.Watcher,
	registry *catalog.Registry,
	ignoreMatcher *ignore.Matcher,
	logger *slog.Logger,
) {
	for batch := range fileWatcher.Changes() {
		for _, change := range batch {
			if filepath.Base(change.Path) == ".gitignore" {
				ignoreMatcher.Reload()
				logger.Info("reloaded ignore rules", "trigger", change.Path)
				break
			}
		}
		registry.MarkDirty()
		logger.Debug("views invalidated", "changes", len(batch))
	}
}

// runPeriodicRefresh forces a rebuild at the given interval until stop is
// closed. This catches changes the watcher missed (network mounts, watch
// registration failures).
func runPeriodicRefresh(
	intervalSeconds int,
	registry *catalog.Registry,
	logger *slog.Logger,
	stop <-chan struct{},
) {
	interval := time.Duration(intervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("periodic refresh started", "intervalSeconds", intervalSeconds)

	for {
		select {
		case <-stop:
			logger.Info("periodic refresh stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if err := registry.Refresh(context.Background()); err != nil {
				logger.Warn("periodic refresh incomplete", "error", err)
				continue
			}
			logger.Debug("periodic refresh complete", "duration", time.Since(start))
		}
	}
}
