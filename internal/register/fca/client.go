// Package fca fetches the FCA register's public search page. The register has
// no stable structured API, so callers get the raw page text and decide what
// it means.
package fca

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
)

// maxPageBytes bounds how much of a register page is read. The authorisation
// markers appear near the top of result pages.
const maxPageBytes = 1 << 20

// Config carries the register endpoint and fetch timeout.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches register search pages over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// New builds a register fetcher from explicit configuration.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the register search page for a query. Non-2xx responses and
// transport failures are errors; the caller advances to its next query.
func (c *Client) Fetch(ctx context.Context, query string) (qualify.RegisterPage, error) {
	endpoint := c.cfg.BaseURL + "/s/search?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return qualify.RegisterPage{}, fmt.Errorf("fca: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return qualify.RegisterPage{}, fmt.Errorf("fca: fetch %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return qualify.RegisterPage{}, fmt.Errorf("fca: fetch %q: unexpected status %d", query, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return qualify.RegisterPage{}, fmt.Errorf("fca: read page: %w", err)
	}

	return qualify.RegisterPage{
		Text: string(body),
		URL:  resp.Request.URL.String(),
	}, nil
}
