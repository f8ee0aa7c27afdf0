package openrouter

import "context"

// IOpenRouter defines the interface for the OpenRouter chat client
type IOpenRouter interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
