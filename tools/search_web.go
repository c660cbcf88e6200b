package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/loupe-ai/loupe/internal/search"
)

// Searcher is the query backend consumed by the search_web tool.
// *search.Client satisfies it; tests substitute stubs.
type Searcher interface {
	Search(ctx context.Context, query string, topN int) ([]search.Result, error)
}

type SearchWebInput struct {
	Query string `json:"query" jsonschema_description:"Google search string."`
}

var SearchWebInputSchema = GenerateSchema[SearchWebInput]()

// noResultsText is the literal tool output when a query returns nothing.
const noResultsText = "No results found."

// SearchWeb returns the search_web tool definition bound to a query backend.
// topN caps how many ranked results are requested and formatted per call.
func SearchWeb(s Searcher, topN int) ToolDefinition {
	if topN <= 0 {
		topN = defaultTopN
	}
	return ToolDefinition{
		Name:        "search_web",
		Description: "Search Google and return the top result snippets.",
		InputSchema: SearchWebInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in SearchWebInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("invalid search_web arguments: %w", err)
			}
			if strings.TrimSpace(in.Query) == "" {
				return "", errors.New("search_web requires a non-empty query")
			}
			results, err := s.Search(ctx, in.Query, topN)
			if err != nil {
				return "", fmt.Errorf("search failed: %w", err)
			}
			return FormatResults(results), nil
		},
	}
}

// FormatResults renders ranked results as one "- <title>: <snippet>" line
// each. Missing fields get literal placeholders so the model always sees a
// uniform shape.
func FormatResults(results []search.Result) string {
	if len(results) == 0 {
		return noResultsText
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		title := r.Title
		if title == "" {
			title = "(untitled)"
		}
		snippet := r.Snippet
		if snippet == "" {
			snippet = "(no snippet)"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", title, snippet))
	}
	return strings.Join(lines, "\n")
}
