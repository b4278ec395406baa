package catalog

import (
	"context"
	"log/slog"
)

// walker carries the state of one rebuild pass over the tree.
type walker struct {
	lister Lister
	views  []*view
	limit  int
	logger *slog.Logger
	seen   int // files visited so far, across the whole walk
}

// walk enumerates dir depth-first in listing order. Every file is turned
// into exactly one FileRecord and offered to every view's predicate; views
// that accept share the same record. A directory whose listing fails is
// skipped with a warning and its siblings continue. Crossing the file
// ceiling aborts the remainder of the walk with ErrFileLimit.
func (w *walker) walk(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := w.lister.List(ctx, dir)
	if err != nil {
		w.logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return nil
	}

	for _, e := range entries {
		if e.Dir {
			if err := w.walk(ctx, e.Path); err != nil {
				return err
			}
			continue
		}

		w.seen++
		if w.seen > w.limit {
			return ErrFileLimit
		}

		rec := NewFileRecord(e.Name, e.Path)
		for _, v := range w.views {
			if v.pred(e) {
				v.records = append(v.records, rec)
			}
		}
	}
	return nil
}
