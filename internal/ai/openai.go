// Package ai wraps the OpenAI API behind the two narrow capabilities the
// pipeline needs: a yes/no judgment about a text excerpt and a structured
// numeric extraction. Both enforce strict output contracts so decision logic
// never parses model prose.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrNoAPIKey is returned by New when no key is configured; callers treat the
// capability as absent and the pipeline degrades per contract.
var ErrNoAPIKey = errors.New("ai: api key not configured")

const (
	defaultModel = "gpt-4o-mini"
	callTimeout  = 20 * time.Second

	// Bounds for the structured inventory contract.
	maxInventory = 10000
)

// Config carries the API credentials and model choice.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional override, used by tests
}

// Client implements the semantic classification and structured extraction
// capabilities on top of chat completions.
type Client struct {
	client openai.Client
	model  string
}

// New builds an AI capability client. Returns ErrNoAPIKey when no credential
// is configured.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNoAPIKey
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Classify asks a yes/no question about an excerpt. The model must answer
// with the single word yes or no; anything else is an error, which callers
// treat as an inconclusive (negative) classification.
func (c *Client) Classify(ctx context.Context, question, excerpt string) (bool, error) {
	system := "You are a compliance analyst. Answer the question about the provided page excerpt with exactly one word: yes or no."
	user := question + "\n\nPage excerpt:\n" + excerpt

	answer, err := c.complete(ctx, system, user)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.Trim(answer, " .\n")) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("ai: classify: unexpected answer %q", answer)
	}
}

// inventoryPayload is the required shape of the extraction response.
type inventoryPayload struct {
	StockEstimate *int `json:"stock_estimate"`
}

// ExtractInventory estimates the number of vehicles in stock from website
// text. The model must return only JSON with a stock_estimate integer;
// missing or out-of-bounds values are errors.
func (c *Client) ExtractInventory(ctx context.Context, dealerName, excerpt string) (int, error) {
	system := `You estimate used-car stock levels from website text. Return ONLY valid JSON with one key: stock_estimate (integer). If unsure, give a safe estimate.`
	user := "Dealer: " + dealerName + "\n\nWebsite text:\n" + excerpt

	answer, err := c.complete(ctx, system, user)
	if err != nil {
		return 0, err
	}

	var payload inventoryPayload
	if err := json.Unmarshal([]byte(stripCodeFence(answer)), &payload); err != nil {
		return 0, fmt.Errorf("ai: parse inventory response: %w", err)
	}
	if payload.StockEstimate == nil {
		return 0, errors.New("ai: inventory response missing stock_estimate")
	}
	n := *payload.StockEstimate
	if n < 0 || n > maxInventory {
		return 0, fmt.Errorf("ai: stock_estimate %d out of bounds", n)
	}
	return n, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("ai: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("ai: empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// stripCodeFence tolerates models that wrap JSON in a markdown fence despite
// the instruction not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
