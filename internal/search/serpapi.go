package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const serpAPIEndpoint = "https://serpapi.com/search.json"

// Result is a single ranked item returned by a search.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

// Client queries the SerpAPI Google results endpoint. An API key is required.
type Client struct {
	APIKey string
	client *http.Client
}

// New constructs a SerpAPI client with a default timeout.
func New(apiKey string) *Client {
	return &Client{APIKey: apiKey, client: &http.Client{Timeout: 10 * time.Second}}
}

// NewWithClient constructs a SerpAPI client using the supplied HTTP client.
// This is useful for overriding the default timeout, and for tests.
func NewWithClient(apiKey string, client *http.Client) *Client {
	return &Client{APIKey: apiKey, client: client}
}

// Search executes a Google query and returns up to topN organic results.
func (c *Client) Search(ctx context.Context, query string, topN int) ([]Result, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, errors.New("serpapi: API key is missing")
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.APIKey)
	if topN > 0 {
		params.Set("num", strconv.Itoa(topN))
	}
	endpoint := serpAPIEndpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi http %d", resp.StatusCode)
	}

	var payload struct {
		OrganicResults []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(payload.OrganicResults))
	for _, r := range payload.OrganicResults {
		results = append(results, Result{Title: r.Title, Link: r.Link, Snippet: r.Snippet})
		if topN > 0 && len(results) >= topN {
			break
		}
	}
	return results, nil
}
