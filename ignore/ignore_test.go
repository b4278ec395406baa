package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Matcher_DefaultPatterns_NodeModules(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(tmpDir, nil)

	nodePath := filepath.Join(tmpDir, "node_modules", "express", "index.js")
	if !matcher.Skip(nodePath) {
		t.Error("expected node_modules files to be skipped")
	}
}

func Test_Matcher_DefaultPatterns_GitDir(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(tmpDir, nil)

	gitPath := filepath.Join(tmpDir, ".git", "config")
	if !matcher.Skip(gitPath) {
		t.Error("expected .git files to be skipped")
	}
	if !matcher.SkipDir(filepath.Join(tmpDir, ".git")) {
		t.Error("expected .git directory to be pruned")
	}
}

func Test_Matcher_AllowsOrdinaryFiles(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(tmpDir, nil)

	if matcher.Skip(filepath.Join(tmpDir, "styles", "theme.css")) {
		t.Error("expected ordinary files to NOT be skipped")
	}
	if matcher.SkipDir(filepath.Join(tmpDir, "styles")) {
		t.Error("expected ordinary directories to NOT be pruned")
	}
}

func Test_Matcher_GitignoreIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte("*.generated.css\nsecret/\n"), 0644)

	matcher := NewMatcher(tmpDir, nil)

	if !matcher.Skip(filepath.Join(tmpDir, "theme.generated.css")) {
		t.Error("expected .gitignore pattern to skip *.generated.css")
	}
	if matcher.Skip(filepath.Join(tmpDir, "theme.css")) {
		t.Error("expected normal .css files to NOT be skipped")
	}
}

func Test_Matcher_CustomPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(tmpDir, []string{"*.draft"})

	if !matcher.Skip(filepath.Join(tmpDir, "notes.draft")) {
		t.Error("expected custom pattern to skip *.draft files")
	}
}

func Test_Matcher_Reload(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(tmpDir, nil)

	target := filepath.Join(tmpDir, "late.tmp")
	if matcher.Skip(target) {
		t.Fatal("expected late.tmp to NOT be skipped before .gitignore exists")
	}

	os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte("*.tmp\n"), 0644)
	matcher.Reload()

	if !matcher.Skip(target) {
		t.Error("expected late.tmp to be skipped after reload")
	}
}
