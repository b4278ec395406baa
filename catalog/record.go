package catalog

// FileRecord describes one file discovered during a rebuild.
// Records are immutable once constructed; a single record is shared by
// pointer across every view whose predicate accepted the file.
type FileRecord struct {
	name string
	path string
}

// NewFileRecord creates a record for a file with the given base name and path.
func NewFileRecord(name string, path string) *FileRecord {
	return &FileRecord{name: name, path: path}
}

// Name returns the base filename.
func (r *FileRecord) Name() string { return r.name }

// Path returns the file's full path.
func (r *FileRecord) Path() string { return r.path }

// Entry is a raw directory entry as reported by a Lister.
// Predicates are evaluated against entries, not records, so a view can
// discriminate on anything the directory abstraction exposes.
type Entry struct {
	Name string // base name
	Path string // full path
	Dir  bool   // true for directories
}
