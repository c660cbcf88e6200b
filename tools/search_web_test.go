package tools_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/loupe-ai/loupe/internal/search"
	"github.com/loupe-ai/loupe/tools"
)

// fixedSearcher returns canned results and records the query and topN it saw.
type fixedSearcher struct {
	results   []search.Result
	err       error
	gotQuery  string
	gotTopN   int
	callCount int
}

func (f *fixedSearcher) Search(ctx context.Context, query string, topN int) ([]search.Result, error) {
	f.gotQuery = query
	f.gotTopN = topN
	f.callCount++
	return f.results, f.err
}

func invoke(t *testing.T, def tools.ToolDefinition, input string) (string, error) {
	t.Helper()
	return def.Function(context.Background(), json.RawMessage(input))
}

func TestSearchWeb_FormatsResults(t *testing.T) {
	s := &fixedSearcher{results: []search.Result{
		{Title: "Go release notes", Snippet: "What's new in the latest release."},
		{Title: "Go blog", Snippet: "Official announcements."},
	}}
	def := tools.SearchWeb(s, 5)

	out, err := invoke(t, def, `{"query":"golang release"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "- Go release notes: What's new in the latest release.\n" +
		"- Go blog: Official announcements."
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if s.gotQuery != "golang release" {
		t.Errorf("backend saw query %q", s.gotQuery)
	}
	if s.gotTopN != 5 {
		t.Errorf("backend saw topN %d, want 5", s.gotTopN)
	}
}

func TestSearchWeb_NoResults(t *testing.T) {
	def := tools.SearchWeb(&fixedSearcher{}, 5)
	out, err := invoke(t, def, `{"query":"obscure"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "No results found." {
		t.Errorf("output = %q", out)
	}
}

func TestSearchWeb_MissingFieldsGetPlaceholders(t *testing.T) {
	s := &fixedSearcher{results: []search.Result{
		{Title: "", Snippet: "only a snippet"},
		{Title: "only a title", Snippet: ""},
	}}
	def := tools.SearchWeb(s, 5)
	out, err := invoke(t, def, `{"query":"partial"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "- (untitled): only a snippet\n- only a title: (no snippet)"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSearchWeb_MalformedArguments(t *testing.T) {
	s := &fixedSearcher{}
	def := tools.SearchWeb(s, 5)
	_, err := invoke(t, def, `{"query":`)
	if err == nil {
		t.Fatal("expected error for malformed arguments")
	}
	if !strings.Contains(err.Error(), "invalid search_web arguments") {
		t.Errorf("unexpected error text: %v", err)
	}
	if s.callCount != 0 {
		t.Errorf("backend should not be called on bad input, got %d calls", s.callCount)
	}
}

func TestSearchWeb_EmptyQuery(t *testing.T) {
	s := &fixedSearcher{}
	def := tools.SearchWeb(s, 5)
	if _, err := invoke(t, def, `{"query":"   "}`); err == nil {
		t.Fatal("expected error for blank query")
	}
	if s.callCount != 0 {
		t.Errorf("backend should not be called on blank query, got %d calls", s.callCount)
	}
}

func TestSearchWeb_BackendErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("quota exhausted")
	def := tools.SearchWeb(&fixedSearcher{err: sentinel}, 5)
	_, err := invoke(t, def, `{"query":"anything"}`)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if !strings.Contains(err.Error(), "search failed") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestSearchWeb_NonPositiveTopNFallsBack(t *testing.T) {
	s := &fixedSearcher{}
	def := tools.SearchWeb(s, 0)
	if _, err := invoke(t, def, `{"query":"x"}`); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.gotTopN != 10 {
		t.Errorf("backend saw topN %d, want fallback 10", s.gotTopN)
	}
}

func TestSearchWebInputSchema(t *testing.T) {
	schema := tools.SearchWebInputSchema
	if schema == nil {
		t.Fatal("nil schema")
	}
	if _, ok := schema.Properties.Get("query"); !ok {
		t.Error(`schema is missing the "query" property`)
	}
	found := false
	for _, name := range schema.Required {
		if name == "query" {
			found = true
		}
	}
	if !found {
		t.Error(`"query" should be required`)
	}
}
