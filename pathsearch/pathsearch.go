// Package pathsearch provides full-text search over indexed file names and
// paths using an in-memory Bleve index. Only path metadata is indexed;
// file contents are never read.
package pathsearch

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/fileviews/fileviews-mcp/catalog"
)

// Index is a searchable mirror of a registry view. It is rebuilt lazily:
// SyncFrom compares the registry generation it last saw and only re-indexes
// when the views have been rebuilt since.
type Index struct {
	mu      sync.RWMutex
	index   bleve.Index
	lastGen uint64
	synced  bool
}

// New creates an empty in-memory path index.
func New() (*Index, error) {
	bleveIndex, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("creating bleve index: %w", err)
	}
	return &Index{index: bleveIndex}, nil
}

// pathDocument is the document stored per record. Tokens carries the path
// split on separators and punctuation ("styles theme css"), because the
// standard analyzer keeps "theme.css" as a single token and queries for
// bare words would miss it otherwise.
type pathDocument struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Tokens string `json:"tokens"`
}

// buildMapping indexes the whole name plus the split tokens, so both
// "theme.css" and "theme" style queries find the record.
func buildMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	nameField := bleve.NewTextFieldMapping()
	nameField.Store = true
	nameField.IncludeInAll = true
	docMapping.AddFieldMappingsAt("name", nameField)

	pathField := bleve.NewTextFieldMapping()
	pathField.Store = true
	pathField.IncludeInAll = false
	docMapping.AddFieldMappingsAt("path", pathField)

	tokensField := bleve.NewTextFieldMapping()
	tokensField.Store = false
	tokensField.IncludeInAll = true
	docMapping.AddFieldMappingsAt("tokens", tokensField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// splitTokens breaks a path into searchable words.
func splitTokens(path string) string {
	words := strings.FieldsFunc(path, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, " ")
}

// SyncFrom rebuilds the index from the given records if generation differs
// from the one last indexed. Returns true when a rebuild happened.
func (pi *Index) SyncFrom(generation uint64, records []*catalog.FileRecord) (bool, error) {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	if pi.synced && pi.lastGen == generation {
		return false, nil
	}

	if err := pi.index.Close(); err != nil {
		return false, fmt.Errorf("closing old index: %w", err)
	}
	fresh, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return false, fmt.Errorf("creating new index: %w", err)
	}
	pi.index = fresh

	batch := pi.index.NewBatch()
	for _, rec := range records {
		doc := pathDocument{Name: rec.Name(), Path: rec.Path(), Tokens: splitTokens(rec.Path())}
		if err := batch.Index(rec.Path(), doc); err != nil {
			return false, fmt.Errorf("indexing %s: %w", rec.Path(), err)
		}
	}
	if err := pi.index.Batch(batch); err != nil {
		return false, fmt.Errorf("applying batch: %w", err)
	}

	pi.lastGen = generation
	pi.synced = true
	return true, nil
}

// Match is one search hit.
type Match struct {
	Name string
	Path string
}

// Search runs a match query over indexed names and paths.
func (pi *Index) Search(queryString string, maxResults int) ([]Match, error) {
	pi.mu.RLock()
	defer pi.mu.RUnlock()

	if maxResults <= 0 {
		maxResults = 50
	}

	request := bleve.NewSearchRequest(bleve.NewMatchQuery(queryString))
	request.Size = maxResults
	request.Fields = []string{"name", "path"}

	results, err := pi.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	matches := make([]Match, 0, len(results.Hits))
	for _, hit := range results.Hits {
		m := Match{Path: hit.ID}
		if name, ok := hit.Fields["name"].(string); ok {
			m.Name = name
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// DocCount returns the number of indexed records.
func (pi *Index) DocCount() uint64 {
	pi.mu.RLock()
	defer pi.mu.RUnlock()
	count, _ := pi.index.DocCount()
	return count
}

// Close releases the underlying Bleve index.
func (pi *Index) Close() error {
	pi.mu.Lock()
	defer pi.mu.Unlock()
	return pi.index.Close()
}
