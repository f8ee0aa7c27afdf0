package googlenl

import (
	"fmt"
	"net/http"
)

const (
	// classifyMinWords is the shortest input the classifier accepts; shorter texts skip topic classification.
	classifyMinWords = 20

	documentTypePlainText = "PLAIN_TEXT"
	encodingUTF8          = "UTF8"
)

// Config holds Google Cloud Natural Language client configuration.
// Exactly one of APIKey or CredentialsFile authenticates the client unless HTTPClient is set.
type Config struct {
	APIKey          string
	CredentialsFile string
	Endpoint        string
	HTTPClient      *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.HTTPClient == nil && c.APIKey == "" && c.CredentialsFile == "" {
		return fmt.Errorf("googlenl: APIKey or CredentialsFile is required")
	}
	return nil
}

// Annotation is the normalized annotateText result.
type Annotation struct {
	SentimentScore float64    `json:"sentiment_score" jsonschema:"minimum=-1,maximum=1"`
	Magnitude      float64    `json:"magnitude"`
	Entities       []Entity   `json:"entities"`
	Categories     []Category `json:"categories"`
}

// Entity is a named entity found in the document.
type Entity struct {
	Name     string  `json:"name" jsonschema:"required"`
	Type     string  `json:"type"`
	Salience float64 `json:"salience"`
}

// Category is a content classification category.
type Category struct {
	Name       string  `json:"name" jsonschema:"required"`
	Confidence float64 `json:"confidence"`
}

// APIError is a non-2xx answer from the Natural Language API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("googlenl: API error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
