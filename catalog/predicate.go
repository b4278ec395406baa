package catalog

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Predicate decides at traversal time whether a view wants a file.
// It receives the raw directory entry, not the resulting FileRecord.
type Predicate func(Entry) bool

// AcceptAll returns a predicate that admits every file.
func AcceptAll() Predicate {
	return func(Entry) bool { return true }
}

// ExtensionIs returns a predicate admitting files whose name ends with the
// given suffix. The comparison is case-sensitive, so ExtensionIs(".css")
// rejects "reset.CSS".
func ExtensionIs(suffix string) Predicate {
	return func(e Entry) bool {
		return strings.HasSuffix(e.Name, suffix)
	}
}

// MatchesGlob returns a predicate admitting files whose base name matches a
// doublestar glob pattern. The pattern is validated up front.
func MatchesGlob(pattern string) (Predicate, error) {
	pattern = strings.ReplaceAll(pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}
	return func(e Entry) bool {
		matched, err := doublestar.Match(pattern, e.Name)
		return err == nil && matched
	}, nil
}
