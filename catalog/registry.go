package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// DefaultFileLimit is the ceiling on files visited in a single rebuild.
const DefaultFileLimit = 10000

// Built-in view names every registry is expected to carry.
const (
	ViewAll = "all"
	ViewCSS = "css"
)

// Lister is the directory abstraction the sync engine walks. List returns
// the children of dir in listing order; the engine recurses into
// directories in that order.
type Lister interface {
	List(ctx context.Context, dir string) ([]Entry, error)
}

// RootProvider supplies the current project root. ok is false when no root
// is available, in which case a rebuild produces empty views.
type RootProvider interface {
	ProjectRoot() (root string, ok bool)
}

// StaticRoot is a RootProvider for a fixed directory. An empty StaticRoot
// means "no root".
type StaticRoot string

// ProjectRoot implements RootProvider.
func (s StaticRoot) ProjectRoot() (string, bool) { return string(s), s != "" }

// view is one named, filtered list of records. Its record slice is replaced
// wholesale on every rebuild, never updated incrementally.
type view struct {
	name    string
	pred    Predicate
	records []*FileRecord
}

// Options configures a Registry.
type Options struct {
	Roots     RootProvider
	Lister    Lister
	Logger    *slog.Logger
	FileLimit int       // 0 means DefaultFileLimit
	OnLimit   func(int) // invoked once per rebuild that hits the file limit
}

// Registry holds named views over a project tree and rebuilds all of them
// lazily, in a single traversal pass, whenever it has been marked dirty.
//
// One mutex serializes rebuilds and reads: a query that arrives while a
// rebuild is in flight blocks until the rebuild finishes, so callers only
// ever observe a fully rebuilt state.
type Registry struct {
	mu         sync.Mutex
	views      map[string]*view
	order      []string // registration order, for stable iteration
	dirty      bool
	generation uint64 // increments on every completed rebuild

	roots     RootProvider
	lister    Lister
	logger    *slog.Logger
	fileLimit int
	onLimit   func(int)
}

// NewRegistry creates a registry with no views. It starts dirty, so the
// first query triggers a rebuild.
func NewRegistry(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	limit := opts.FileLimit
	if limit <= 0 {
		limit = DefaultFileLimit
	}
	return &Registry{
		views:     make(map[string]*view),
		dirty:     true,
		roots:     opts.Roots,
		lister:    opts.Lister,
		logger:    logger,
		fileLimit: limit,
		onLimit:   opts.OnLimit,
	}
}

// RegisterDefaults installs the two built-in views: "all" accepts every
// file, "css" accepts files with a literal ".css" suffix.
func RegisterDefaults(r *Registry) error {
	if err := r.Register(ViewAll, AcceptAll()); err != nil {
		return err
	}
	return r.Register(ViewCSS, ExtensionIs(".css"))
}

// Register adds a new empty view and marks the registry dirty, since the
// next rebuild must populate the new view too. Registering an existing name
// fails with ErrDuplicateView; a nil predicate fails with ErrNilPredicate.
func (r *Registry) Register(name string, pred Predicate) error {
	if pred == nil {
		return fmt.Errorf("%w: %q", ErrNilPredicate, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.views[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateView, name)
	}
	r.views[name] = &view{name: name, pred: pred}
	r.order = append(r.order, name)
	r.dirty = true
	return nil
}

// MarkDirty flags all views as stale. The next query rebuilds them.
// Idempotent.
func (r *Registry) MarkDirty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = true
}

// Sync rebuilds every view if the registry is dirty, and is a no-op
// otherwise. On a rebuild that hits the file ceiling it returns
// ErrFileLimit after notifying the OnLimit callback; the views keep the
// records indexed before the abort and the registry is considered clean.
// Context cancellation aborts the walk and leaves the registry dirty.
func (r *Registry) Sync(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncLocked(ctx)
}

// Refresh marks the registry dirty and immediately rebuilds. This is the
// handler for root-change notifications and the explicit reindex surface.
func (r *Registry) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = true
	return r.syncLocked(ctx)
}

// syncLocked performs the rebuild. Callers must hold r.mu.
func (r *Registry) syncLocked(ctx context.Context) error {
	if !r.dirty {
		return nil
	}

	start := time.Now()
	for _, name := range r.order {
		r.views[name].records = nil
	}

	root, ok := r.roots.ProjectRoot()
	if !ok {
		// Nothing to index is not an error.
		r.dirty = false
		r.generation++
		r.logger.Debug("rebuild skipped, no project root")
		return nil
	}

	w := walker{
		lister: r.lister,
		views:  r.orderedViews(),
		limit:  r.fileLimit,
		logger: r.logger,
	}
	err := w.walk(ctx, root)

	switch {
	case err == nil:
		r.dirty = false
		r.generation++
		r.logger.Info("rebuild complete",
			"root", root,
			"files", w.seen,
			"views", len(r.order),
			"duration", time.Since(start),
		)
		return nil

	case errors.Is(err, ErrFileLimit):
		// Terminal for this cycle: serve the partial lists until the next
		// explicit invalidation.
		r.dirty = false
		r.generation++
		r.logger.Warn("rebuild aborted at file limit", "root", root, "limit", r.fileLimit)
		if r.onLimit != nil {
			r.onLimit(w.seen)
		}
		return err

	default:
		// Cancellation or another hard failure: stay dirty so the next
		// query retries the rebuild.
		r.logger.Warn("rebuild failed", "root", root, "error", err)
		return err
	}
}

// orderedViews returns the views in registration order.
func (r *Registry) orderedViews() []*view {
	views := make([]*view, 0, len(r.order))
	for _, name := range r.order {
		views = append(views, r.views[name])
	}
	return views
}

// Records rebuilds if needed and returns the named view's records in
// traversal discovery order. The returned slice is the caller's to keep;
// the records themselves are shared and must not be mutated.
func (r *Registry) Records(ctx context.Context, name string) ([]*FileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.syncLocked(ctx); err != nil && !errors.Is(err, ErrFileLimit) {
		return nil, err
	}

	v, ok := r.views[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	out := make([]*FileRecord, len(v.records))
	copy(out, v.records)
	return out, nil
}

// FilteredRecords returns the named view's records whose base name passes
// keep. The underlying view is not modified.
func (r *Registry) FilteredRecords(ctx context.Context, name string, keep func(name string) bool) ([]*FileRecord, error) {
	records, err := r.Records(ctx, name)
	if err != nil {
		return nil, err
	}

	var out []*FileRecord
	for _, rec := range records {
		if keep(rec.Name()) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// RecordsByName returns every record in the named view whose base filename
// equals filename exactly. Duplicate filenames at different paths are legal
// and all are returned, in discovery order.
func (r *Registry) RecordsByName(ctx context.Context, name string, filename string) ([]*FileRecord, error) {
	return r.FilteredRecords(ctx, name, func(n string) bool { return n == filename })
}

// ViewNames returns the registered view names in registration order.
func (r *Registry) ViewNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Generation returns the number of completed rebuilds. Consumers that
// derive state from the views (such as the path search index) use it to
// detect staleness cheaply.
func (r *Registry) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}
