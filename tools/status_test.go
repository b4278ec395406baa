package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fileviews/fileviews-mcp/pathsearch"
)

func Test_StatusHandler_ListsViews(t *testing.T) {
	pi, err := pathsearch.New()
	if err != nil {
		t.Fatal(err)
	}
	defer pi.Close()

	h := &StatusHandler{
		Registry:  newTestRegistry(t, "main.js", "theme.css"),
		PathIndex: pi,
		StartTime: time.Now(),
		RootDir:   "/proj",
		Logger:    testLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, StatusArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := resultText(t, result)
	for _, want := range []string{"Root directory: /proj", "all", "css", "2 files", "1 files"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected status to contain %q, got:\n%s", want, text)
		}
	}
}
