package llmprovider

import (
	"context"

	"emotiai/pkg/deepseek"
	"emotiai/pkg/gemini"
	"emotiai/pkg/openrouter"
)

// OpenRouterAdapter adapts pkg/openrouter to llmprovider.Provider interface
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter) *OpenRouterAdapter {
	return &OpenRouterAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	orReq := &openrouter.Request{
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	for _, m := range withSystem(req) {
		orReq.Messages = append(orReq.Messages, openrouter.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.GenerateContent(ctx, orReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// Model returns model name
func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	for _, m := range withSystem(req) {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface.
// Gemini takes the system instruction separately and calls the assistant role "model".
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		MaxTokens:         req.MaxTokens,
		Temperature:       req.Temperature,
	}
	for _, m := range req.Messages {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		gReq.Messages = append(gReq.Messages, gemini.Content{Role: role, Parts: []gemini.Part{{Text: m.Content}}})
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CandidatesTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// withSystem prepends the system instruction as the first message if present.
func withSystem(req *Request) []Message {
	if req.SystemInstruction == "" {
		return req.Messages
	}
	msgs := make([]Message, 0, len(req.Messages)+1)
	msgs = append(msgs, Message{Role: RoleSystem, Content: req.SystemInstruction})
	return append(msgs, req.Messages...)
}
