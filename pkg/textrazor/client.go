package textrazor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the TextRazor API client.
type Client struct {
	apiKey     string
	url        string
	extractors string
	httpClient *http.Client
}

// New creates a new TextRazor client
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:     cfg.APIKey,
		url:        cfg.URL,
		extractors: cfg.Extractors,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Analyze posts text with the configured extractors.
func (c *Client) Analyze(ctx context.Context, text string) (*AnalyzeResponse, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("extractors", c.extractors)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("textrazor: failed to create request: %w", err)
	}
	httpReq.Header.Set("X-TextRazor-Key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("textrazor: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("textrazor: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out AnalyzeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if out.Response == nil {
		return nil, fmt.Errorf("%w: missing response object", ErrInvalidResponse)
	}
	return &out, nil
}
