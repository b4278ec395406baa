package tools

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fileviews/fileviews-mcp/catalog"
	"github.com/fileviews/fileviews-mcp/fsys"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRegistry builds a registry over a temp directory containing the
// given relative file paths.
func newTestRegistry(t *testing.T, relPaths ...string) *catalog.Registry {
	t.Helper()

	rootDir := t.TempDir()
	for _, relPath := range relPaths {
		fullPath := filepath.Join(rootDir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fullPath, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	registry := catalog.NewRegistry(catalog.Options{
		Roots:  catalog.StaticRoot(rootDir),
		Lister: &fsys.DirLister{},
		Logger: testLogger(),
	})
	if err := catalog.RegisterDefaults(registry); err != nil {
		t.Fatal(err)
	}
	return registry
}
