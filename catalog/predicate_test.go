package catalog

import "testing"

func Test_AcceptAll_AdmitsEverything(t *testing.T) {
	pred := AcceptAll()

	if !pred(Entry{Name: "main.go", Path: "/p/main.go"}) {
		t.Error("expected AcceptAll to admit main.go")
	}
	if !pred(Entry{Name: "reset.CSS", Path: "/p/reset.CSS"}) {
		t.Error("expected AcceptAll to admit reset.CSS")
	}
}

func Test_ExtensionIs_CaseSensitive(t *testing.T) {
	pred := ExtensionIs(".css")

	if !pred(Entry{Name: "theme.css"}) {
		t.Error("expected theme.css to match")
	}
	if pred(Entry{Name: "reset.CSS"}) {
		t.Error("expected reset.CSS to NOT match (uppercase extension)")
	}
	if pred(Entry{Name: "main.js"}) {
		t.Error("expected main.js to NOT match")
	}
}

func Test_MatchesGlob_BaseName(t *testing.T) {
	pred, err := MatchesGlob("*_test.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !pred(Entry{Name: "walk_test.go"}) {
		t.Error("expected walk_test.go to match")
	}
	if pred(Entry{Name: "walk.go"}) {
		t.Error("expected walk.go to NOT match")
	}
}

func Test_MatchesGlob_InvalidPattern(t *testing.T) {
	if _, err := MatchesGlob("[invalid"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
