package openrouter

import "time"

const (
	// DefaultBaseURL is the OpenRouter OpenAI-compatible endpoint
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the default chat model
	DefaultModel = "openai/gpt-3.5-turbo"

	// DefaultReferer and DefaultTitle identify the calling app to OpenRouter.
	DefaultReferer = "http://localhost:3000"
	DefaultTitle   = "EmotiAI"

	DefaultTimeout = 30 * time.Second
)
