package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides whether a path is excluded from traversal. It combines
// the built-in default patterns, the project's .gitignore, and any custom
// patterns supplied at startup.
// Thread-safe: Reload takes a write lock, the Skip methods a read lock.
type Matcher struct {
	mu       sync.RWMutex
	rootDir  string
	git      gitignore.GitIgnore
	patterns []string
}

// NewMatcher creates a matcher rooted at rootDir with optional extra
// patterns (shell globs matched against basenames and relative paths).
func NewMatcher(rootDir string, patterns []string) *Matcher {
	m := &Matcher{
		rootDir:  rootDir,
		patterns: patterns,
	}
	m.git = loadGitignore(rootDir)
	return m
}

// Skip returns true if the given absolute path should be excluded.
func (m *Matcher) Skip(absolutePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if matchesPatterns(DefaultPatterns, relativePath) {
		return true
	}
	if matchesPatterns(m.patterns, relativePath) {
		return true
	}

	if m.git != nil {
		isDir := false
		if info, err := os.Stat(absolutePath); err == nil {
			isDir = info.IsDir()
		}
		// Relative() matches without requiring the file to exist on disk.
		if match := m.git.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}
	return false
}

// SkipDir returns true if a directory should be pruned from the walk.
func (m *Matcher) SkipDir(absolutePath string) bool {
	// Fast path for directories that are always pruned.
	switch filepath.Base(absolutePath) {
	case ".git", ".svn", ".hg", "node_modules", "__pycache__",
		".idea", ".vscode", ".cache", ".venv", "venv":
		return true
	}
	return m.Skip(absolutePath)
}

// Reload re-reads .gitignore from disk. Called when the watcher sees the
// file change.
func (m *Matcher) Reload() {
	git := loadGitignore(m.rootDir)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.git = git
}

// matchesPatterns checks relativePath against a pattern list. Plain names
// match any path component; globs match the basename or the whole relative
// path.
func matchesPatterns(patterns []string, relativePath string) bool {
	baseName := strings.ToLower(filepath.Base(relativePath))
	lowerPath := strings.ToLower(relativePath)

	for _, pattern := range patterns {
		pattern = strings.ToLower(pattern)

		if !strings.ContainsAny(pattern, "*?[") {
			if baseName == pattern {
				return true
			}
			for _, part := range strings.Split(lowerPath, "/") {
				if part == pattern {
					return true
				}
			}
			continue
		}

		if matched, err := filepath.Match(pattern, baseName); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, lowerPath); err == nil && matched {
			return true
		}
	}
	return false
}

// loadGitignore reads rootDir/.gitignore, returning nil when absent.
func loadGitignore(rootDir string) gitignore.GitIgnore {
	f, err := os.Open(filepath.Join(rootDir, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()
	return gitignore.New(f, rootDir, nil)
}
