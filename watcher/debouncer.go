package watcher

import (
	"sync"
	"time"
)

// Change is one coalesced file system change.
type Change struct {
	Path string
	Op   Op
}

// Op is the kind of file system operation observed.
type Op int

const (
	OpCreate Op = iota
	OpWrite
	OpRemove
	OpRename
)

// Debouncer collects raw events and emits one batch per quiet period, so a
// burst of saves marks the registry dirty once instead of per event.
// Repeated changes to the same path collapse to the latest op.
type Debouncer struct {
	interval time.Duration
	pending  map[string]Change
	mu       sync.Mutex
	timer    *time.Timer
	output   chan []Change
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		pending:  make(map[string]Change),
		output:   make(chan []Change, 16),
	}
}

// Output returns the channel receiving batched changes.
func (d *Debouncer) Output() <-chan []Change {
	return d.output
}

// Add records a change and restarts the quiet-period timer.
func (d *Debouncer) Add(path string, op Op) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = Change{Path: path, Op: op}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.flush)
}

// flush emits the accumulated batch and resets the buffer.
func (d *Debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pending) == 0 {
		return
	}

	batch := make([]Change, 0, len(d.pending))
	for _, change := range d.pending {
		batch = append(batch, change)
	}
	d.pending = make(map[string]Change)
	d.output <- batch
}
