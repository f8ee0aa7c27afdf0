package textrazor

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultURL is the TextRazor analysis endpoint.
	DefaultURL = "https://api.textrazor.com"

	// DefaultExtractors requests entities, topics and document sentiment in one call.
	DefaultExtractors = "entities,topics,sentiment"

	DefaultTimeout = 30 * time.Second
)

// ErrInvalidResponse is returned when the payload is not a TextRazor analysis object.
var ErrInvalidResponse = errors.New("textrazor: invalid response payload")

// Config holds TextRazor client configuration
type Config struct {
	APIKey     string
	URL        string
	Extractors string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("textrazor: APIKey is required")
	}
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Extractors == "" {
		c.Extractors = DefaultExtractors
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// AnalyzeResponse is the top level TextRazor reply.
// Every field is optional; absent ones decode to their zero value.
type AnalyzeResponse struct {
	Ok       bool      `json:"ok,omitempty"`
	Error    string    `json:"error,omitempty"`
	Response *Analysis `json:"response,omitempty" jsonschema:"required"`
}

// Analysis holds the extractor outputs.
type Analysis struct {
	Sentiment *Sentiment `json:"sentiment,omitempty"`
	Entities  []Entity   `json:"entities,omitempty"`
	Topics    []Topic    `json:"topics,omitempty"`
}

// Sentiment is the document level sentiment.
type Sentiment struct {
	Score float64 `json:"score" jsonschema:"minimum=-1,maximum=1"`
}

// Entity is a recognized entity mention.
type Entity struct {
	EntityID        string  `json:"entityId,omitempty"`
	MatchedText     string  `json:"matchedText,omitempty"`
	RelevanceScore  float64 `json:"relevanceScore,omitempty"`
	ConfidenceScore float64 `json:"confidenceScore,omitempty"`
}

// Topic is a detected topic label.
type Topic struct {
	Label string  `json:"label"`
	Score float64 `json:"score,omitempty"`
}

// APIError is a non-2xx answer from TextRazor.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("textrazor: API error %d: %s", e.StatusCode, e.Body)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
