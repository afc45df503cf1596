// Package website estimates a dealer's stock level from its public website:
// fetch the page, reduce it to visible text, and ask the structured extractor
// for a stock count.
package website

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// defaultEstimate is the safe stock assumption when no website was supplied
// or the extraction could not produce a number.
const defaultEstimate = 20

// Bounds on how much page content is fetched and how much text reaches the
// extractor.
const (
	maxFetchBytes   = 256 << 10
	excerptMaxChars = 4000
)

// StructuredExtractor turns a page excerpt into a stock count with a strict
// numeric contract. Implemented by the AI capability client.
type StructuredExtractor interface {
	ExtractInventory(ctx context.Context, dealerName, excerpt string) (int, error)
}

// Estimator produces inventory estimates for dealer websites.
type Estimator struct {
	extractor StructuredExtractor
	http      *http.Client
	logger    *slog.Logger
}

// New builds an estimator. timeout bounds the website fetch.
func New(extractor StructuredExtractor, timeout time.Duration, logger *slog.Logger) *Estimator {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{
		extractor: extractor,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// Estimate fetches the dealer website and extracts a stock count. Every
// failure path falls back to the default safe estimate rather than erroring:
// a dealer is not penalized for a flaky website.
func (e *Estimator) Estimate(ctx context.Context, websiteURL, dealerName string) (*int, error) {
	if strings.TrimSpace(websiteURL) == "" {
		return estimatePtr(defaultEstimate), nil
	}

	excerpt, err := e.fetchExcerpt(ctx, websiteURL)
	if err != nil {
		e.logger.DebugContext(ctx, "website fetch failed",
			"url", websiteURL,
			"error", err,
		)
		return estimatePtr(defaultEstimate), nil
	}

	count, err := e.extractor.ExtractInventory(ctx, dealerName, excerpt)
	if err != nil {
		e.logger.DebugContext(ctx, "inventory extraction failed",
			"url", websiteURL,
			"error", err,
		)
		return estimatePtr(defaultEstimate), nil
	}
	return estimatePtr(count), nil
}

func (e *Estimator) fetchExcerpt(ctx context.Context, websiteURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, websiteURL, nil)
	if err != nil {
		return "", fmt.Errorf("website: build request: %w", err)
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("website: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("website: fetch: unexpected status %d", resp.StatusCode)
	}

	text := visibleText(io.LimitReader(resp.Body, maxFetchBytes))
	if len(text) > excerptMaxChars {
		cut := excerptMaxChars
		// Never split a multi-byte rune at the cap.
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text, nil
}

// visibleText strips HTML down to the text a visitor would see, skipping
// script and style content. Tokenizer errors end the walk with whatever was
// collected, since a truncated read always breaks the final token.
func visibleText(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)
	var b strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func estimatePtr(v int) *int { return &v }
