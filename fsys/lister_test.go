package fsys

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fileviews/fileviews-mcp/ignore"
)

func writeFile(t *testing.T, dir string, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func Test_DirLister_ListsFilesAndDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "b.css")
	writeFile(t, tmpDir, "a.js")
	os.Mkdir(filepath.Join(tmpDir, "sub"), 0755)

	lister := &DirLister{}
	entries, err := lister.List(context.Background(), tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	// os.ReadDir sorts by name.
	want := []string{"a.js", "b.css", "sub"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entry[%d]: expected %s, got %s", i, name, entries[i].Name)
		}
	}
	if !entries[2].Dir {
		t.Error("expected sub to be a directory entry")
	}
}

func Test_DirLister_AppliesIgnoreRules(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "keep.css")
	writeFile(t, tmpDir, "debug.log")
	os.Mkdir(filepath.Join(tmpDir, "node_modules"), 0755)

	lister := &DirLister{Ignore: ignore.NewMatcher(tmpDir, nil)}
	entries, err := lister.List(context.Background(), tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 || entries[0].Name != "keep.css" {
		t.Errorf("expected only keep.css, got %v", entries)
	}
}

func Test_DirLister_MissingDirectory(t *testing.T) {
	lister := &DirLister{}
	if _, err := lister.List(context.Background(), filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Error("expected error for missing directory")
	}
}
