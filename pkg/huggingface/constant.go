package huggingface

import "time"

const (
	// DefaultBaseURL is the Inference API models endpoint.
	DefaultBaseURL = "https://api-inference.huggingface.co/models"

	// DefaultModel classifies into joy, sadness, anger, fear, surprise and love.
	DefaultModel = "bhadresh-savani/distilbert-base-uncased-emotion"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
