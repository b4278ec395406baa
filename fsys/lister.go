// Package fsys implements the catalog directory abstraction on the real
// filesystem.
package fsys

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fileviews/fileviews-mcp/catalog"
)

// IgnoreChecker prunes paths from directory listings.
type IgnoreChecker interface {
	Skip(absolutePath string) bool
	SkipDir(absolutePath string) bool
}

// DirLister lists directory children via os.ReadDir, filtered through an
// optional ignore checker. ReadDir returns entries sorted by name, so the
// listing order (and therefore record discovery order) is deterministic.
type DirLister struct {
	Ignore IgnoreChecker
}

// List implements catalog.Lister.
func (l *DirLister) List(ctx context.Context, dir string) ([]catalog.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(children))
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		if child.IsDir() {
			if l.Ignore != nil && l.Ignore.SkipDir(path) {
				continue
			}
			entries = append(entries, catalog.Entry{Name: child.Name(), Path: path, Dir: true})
			continue
		}
		if l.Ignore != nil && l.Ignore.Skip(path) {
			continue
		}
		entries = append(entries, catalog.Entry{Name: child.Name(), Path: path})
	}
	return entries, nil
}
