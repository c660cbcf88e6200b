package search_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/loupe-ai/loupe/internal/search"
)

type capture struct {
	method string
	url    string
}

type fakeTransport struct {
	respStatus int
	respBody   []byte
	captured   *capture
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		_, _ = io.Copy(io.Discard, req.Body)
		_ = req.Body.Close()
	}
	if f.captured != nil {
		f.captured.method = req.Method
		f.captured.url = req.URL.String()
	}
	resp := &http.Response{
		StatusCode: f.respStatus,
		Body:       io.NopCloser(bytes.NewReader(f.respBody)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func clientWith(rt http.RoundTripper) *search.Client {
	return search.NewWithClient("test-key", &http.Client{Transport: rt})
}

const organicBody = `{
  "organic_results": [
    {"title": "First", "link": "https://a.example", "snippet": "alpha"},
    {"title": "Second", "link": "https://b.example", "snippet": "beta"},
    {"title": "Third", "link": "https://c.example", "snippet": "gamma"}
  ]
}`

func TestSearch_ParsesOrganicResults(t *testing.T) {
	ft := &fakeTransport{respStatus: 200, respBody: []byte(organicBody)}
	c := clientWith(ft)

	results, err := c.Search(context.Background(), "anything", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := search.Result{Title: "First", Link: "https://a.example", Snippet: "alpha"}
	if results[0] != want {
		t.Errorf("results[0] = %+v, want %+v", results[0], want)
	}
}

func TestSearch_CapsAtTopN(t *testing.T) {
	ft := &fakeTransport{respStatus: 200, respBody: []byte(organicBody)}
	c := clientWith(ft)

	results, err := c.Search(context.Background(), "anything", 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Title != "Second" {
		t.Errorf("results[1] = %+v", results[1])
	}
}

func TestSearch_RequestShape(t *testing.T) {
	cap := &capture{}
	ft := &fakeTransport{respStatus: 200, respBody: []byte(`{"organic_results":[]}`), captured: cap}
	c := clientWith(ft)

	if _, err := c.Search(context.Background(), "go generics", 4); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cap.method != http.MethodGet {
		t.Errorf("method = %q, want GET", cap.method)
	}
	for _, fragment := range []string{
		"serpapi.com/search.json",
		"engine=google",
		"q=go+generics",
		"api_key=test-key",
		"num=4",
	} {
		if !strings.Contains(cap.url, fragment) {
			t.Errorf("request URL %q missing %q", cap.url, fragment)
		}
	}
}

func TestSearch_MissingAPIKey(t *testing.T) {
	c := search.NewWithClient("  ", &http.Client{Transport: &fakeTransport{respStatus: 200}})
	_, err := c.Search(context.Background(), "anything", 5)
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !strings.Contains(err.Error(), "API key is missing") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestSearch_HTTPErrorStatus(t *testing.T) {
	ft := &fakeTransport{respStatus: 429, respBody: []byte(`{"error":"rate limited"}`)}
	c := clientWith(ft)

	_, err := c.Search(context.Background(), "anything", 5)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "serpapi http 429") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestSearch_EmptyResults(t *testing.T) {
	ft := &fakeTransport{respStatus: 200, respBody: []byte(`{}`)}
	c := clientWith(ft)

	results, err := c.Search(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %+v", results)
	}
}
