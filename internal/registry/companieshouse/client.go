// Package companieshouse implements the company registry search against the
// Companies House public data API.
package companieshouse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
)

// Config carries the credentials and endpoint for the search API. The API key
// travels as the basic-auth username with a blank password.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client queries the Companies House company search endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

// New builds a registry client from explicit configuration.
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

// searchResponse mirrors the subset of the search payload the matcher needs.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title          string `json:"title"`
	CompanyNumber  string `json:"company_number"`
	CompanyStatus  string `json:"company_status"`
	DateOfCreation string `json:"date_of_creation"`
	AddressSnippet string `json:"address_snippet"`
	Address        struct {
		PostalCode string `json:"postal_code"`
	} `json:"address"`
}

// Search runs one registry search query and returns the raw candidates in
// page order. A failed call returns an error; the matcher treats that as
// "no candidates from this call".
func (c *Client) Search(ctx context.Context, query string) ([]qualify.RegistryCandidate, error) {
	endpoint := c.cfg.BaseURL + "/search/companies?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("companieshouse: build request: %w", err)
	}
	req.SetBasicAuth(c.cfg.APIKey, "")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("companieshouse: search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("companieshouse: search %q: unexpected status %d", query, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("companieshouse: decode search response: %w", err)
	}

	candidates := make([]qualify.RegistryCandidate, 0, len(payload.Items))
	for _, item := range payload.Items {
		candidates = append(candidates, qualify.RegistryCandidate{
			Title:          item.Title,
			Status:         item.CompanyStatus,
			CompanyNumber:  item.CompanyNumber,
			Postcode:       item.Address.PostalCode,
			CreationDate:   item.DateOfCreation,
			AddressSnippet: item.AddressSnippet,
		})
	}
	return candidates, nil
}
