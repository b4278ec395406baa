package pathsearch

import (
	"testing"

	"github.com/fileviews/fileviews-mcp/catalog"
)

func testRecords() []*catalog.FileRecord {
	return []*catalog.FileRecord{
		catalog.NewFileRecord("theme.css", "/proj/styles/theme.css"),
		catalog.NewFileRecord("reset.css", "/proj/styles/reset.css"),
		catalog.NewFileRecord("main.js", "/proj/src/main.js"),
	}
}

func Test_Index_SearchByName(t *testing.T) {
	pi, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer pi.Close()

	if _, err := pi.SyncFrom(1, testRecords()); err != nil {
		t.Fatal(err)
	}

	matches, err := pi.Search("theme", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Path != "/proj/styles/theme.css" {
		t.Errorf("expected /proj/styles/theme.css, got %s", matches[0].Path)
	}
	if matches[0].Name != "theme.css" {
		t.Errorf("expected name theme.css, got %s", matches[0].Name)
	}
}

func Test_Index_SearchByPathSegment(t *testing.T) {
	pi, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer pi.Close()

	if _, err := pi.SyncFrom(1, testRecords()); err != nil {
		t.Fatal(err)
	}

	matches, err := pi.Search("styles", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches under styles/, got %d", len(matches))
	}
}

func Test_Index_SyncFromSkipsSameGeneration(t *testing.T) {
	pi, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer pi.Close()

	rebuilt, err := pi.SyncFrom(1, testRecords())
	if err != nil {
		t.Fatal(err)
	}
	if !rebuilt {
		t.Fatal("expected first SyncFrom to rebuild")
	}

	rebuilt, err = pi.SyncFrom(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt {
		t.Error("expected SyncFrom with the same generation to be a no-op")
	}
	if pi.DocCount() != 3 {
		t.Errorf("expected 3 documents after no-op sync, got %d", pi.DocCount())
	}
}

func Test_Index_SyncFromReplacesOnNewGeneration(t *testing.T) {
	pi, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer pi.Close()

	if _, err := pi.SyncFrom(1, testRecords()); err != nil {
		t.Fatal(err)
	}
	rebuilt, err := pi.SyncFrom(2, testRecords()[:1])
	if err != nil {
		t.Fatal(err)
	}
	if !rebuilt {
		t.Fatal("expected rebuild on new generation")
	}
	if pi.DocCount() != 1 {
		t.Errorf("expected 1 document after rebuild, got %d", pi.DocCount())
	}
}
