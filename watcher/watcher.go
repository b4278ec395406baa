// Package watcher turns file system events under the project root into
// debounced change batches that invalidate the view registry.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IgnoreChecker prunes ignored paths from watching.
type IgnoreChecker interface {
	Skip(absolutePath string) bool
	SkipDir(absolutePath string) bool
}

// Watcher watches the project tree recursively and emits debounced change
// batches. Newly created directories are added to the watch set on the fly.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	ignore    IgnoreChecker
	rootDir   string
	logger    *slog.Logger
}

// New creates a recursive watcher on rootDir, registering every
// non-ignored subdirectory.
func New(rootDir string, ignore IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		debouncer: NewDebouncer(100 * time.Millisecond),
		ignore:    ignore,
		rootDir:   rootDir,
		logger:    logger,
	}

	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are simply not watched
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignore.SkipDir(path) {
			return filepath.SkipDir
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Changes returns the channel receiving debounced change batches.
func (w *Watcher) Changes() <-chan []Change {
	return w.debouncer.Output()
}

// Start listens for events until the watcher is closed. Run in a goroutine.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent converts one fsnotify event into a debounced change.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// A new directory extends the watch set but emits no change itself;
	// the files created inside it will.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !w.ignore.SkipDir(path) {
				if err := w.fsWatcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
			}
			return
		}
	}

	if w.ignore.Skip(path) {
		return
	}

	var op Op
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpWrite
	case event.Has(fsnotify.Remove):
		op = OpRemove
	case event.Has(fsnotify.Rename):
		op = OpRename
	default:
		return
	}

	w.debouncer.Add(path, op)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
