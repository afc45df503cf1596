// Package places looks up a dealer's public rating via the Google Places text
// search. The first result is not always the dealer, so the result whose name
// is closest to the dealer name wins.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// Config carries the Places credentials and endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client queries the Places text search API.
type Client struct {
	cfg  Config
	http *http.Client
}

// New builds a rating client from explicit configuration.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

type textSearchResponse struct {
	Results []textSearchResult `json:"results"`
}

type textSearchResult struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
}

// Rating searches for "<name> <postcode> car dealer" and returns the rating of
// the result closest to the dealer name by edit distance, nil when the search
// found nothing or the best result carries no rating.
func (c *Client) Rating(ctx context.Context, name, postcode string) (*float64, error) {
	query := strings.TrimSpace(name + " " + postcode + " car dealer")
	endpoint := c.cfg.BaseURL + "/textsearch/json?query=" + url.QueryEscape(query) + "&key=" + url.QueryEscape(c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: search %q: unexpected status %d", query, resp.StatusCode)
	}

	var payload textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}

	best := closestResult(name, payload.Results)
	return best.Rating, nil
}

// closestResult picks the result with the smallest edit distance to the dealer
// name, compared case-insensitively. Ties keep the earlier result, matching
// the API's own relevance ordering.
func closestResult(name string, results []textSearchResult) textSearchResult {
	target := strings.ToUpper(strings.TrimSpace(name))
	best := results[0]
	bestDist := levenshtein.ComputeDistance(target, strings.ToUpper(best.Name))
	for _, r := range results[1:] {
		dist := levenshtein.ComputeDistance(target, strings.ToUpper(r.Name))
		if dist < bestDist {
			best = r
			bestDist = dist
		}
	}
	return best
}
