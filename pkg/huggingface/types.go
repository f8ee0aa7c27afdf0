package huggingface

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidResponse is returned when the payload does not decode into classifications.
var ErrInvalidResponse = errors.New("huggingface: invalid response payload")

// Config holds Hugging Face client configuration
type Config struct {
	Token      string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("huggingface: Token is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Classification is one label/score pair of a text-classification response.
type Classification struct {
	Label string  `json:"label" jsonschema:"required,description=Class label emitted by the model"`
	Score float64 `json:"score" jsonschema:"required,minimum=0,maximum=1"`
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// APIError is a non-2xx answer from the Inference API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface: API error %d: %s", e.StatusCode, e.Body)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
