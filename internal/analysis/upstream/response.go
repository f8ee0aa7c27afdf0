package upstream

import (
	"context"

	"emotiai/internal/analysis"
	"emotiai/pkg/llmprovider"
)

// DefaultMaxTokens caps the generated reply length.
const DefaultMaxTokens = 150

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	Name() string
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type chatResponse struct {
	gen       Generator
	maxTokens int
}

// NewChatResponse creates a ResponseAdapter that sends one chat completion per call.
func NewChatResponse(gen Generator, maxTokens int) ResponseAdapter {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &chatResponse{gen: gen, maxTokens: maxTokens}
}

func (a *chatResponse) Name() string {
	return a.gen.Name()
}

func (a *chatResponse) GenerateResponse(ctx context.Context, req ResponseRequest) (Reply, error) {
	if err := analysis.ValidateText(req.Text); err != nil {
		return Reply{}, err
	}

	resp, err := a.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction,
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Content: buildPrompt(req)},
		},
		MaxTokens: a.maxTokens,
	})
	if err != nil {
		return Reply{}, Classify(a.gen.Name(), err)
	}

	return Reply{
		Text:  resp.Content,
		Style: AnalyzeResponseStyle(resp.Content),
	}, nil
}
