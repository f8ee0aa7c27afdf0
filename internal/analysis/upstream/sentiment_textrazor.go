package upstream

import (
	"context"
	"fmt"
	"time"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
	"emotiai/pkg/textrazor"
)

const providerTextRazor = "textrazor"

// Analyzer is the subset of textrazor.Client the sentiment adapter needs.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*textrazor.AnalyzeResponse, error)
}

type textRazorSentiment struct {
	client  Analyzer
	timeout time.Duration
}

// NewTextRazorSentiment creates a SentimentAdapter backed by TextRazor.
func NewTextRazorSentiment(client Analyzer, timeout time.Duration) SentimentAdapter {
	return &textRazorSentiment{client: client, timeout: timeout}
}

func (a *textRazorSentiment) Name() string {
	return providerTextRazor
}

func (a *textRazorSentiment) AnalyzeSentiment(ctx context.Context, text string) (model.SentimentResult, error) {
	if err := analysis.ValidateText(text); err != nil {
		return model.SentimentResult{}, err
	}

	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.Analyze(ctx, text)
	if err != nil {
		return model.SentimentResult{}, Classify(providerTextRazor, err)
	}
	if resp == nil || resp.Response == nil {
		return model.SentimentResult{}, malformed(providerTextRazor, "missing response object")
	}

	var score float64
	if s := resp.Response.Sentiment; s != nil {
		score = s.Score
	}
	if score < -1 || score > 1 {
		return model.SentimentResult{}, malformed(providerTextRazor, fmt.Sprintf("sentiment score %v not in [-1,1]", score))
	}

	entities := make([]string, 0, len(resp.Response.Entities))
	for _, e := range resp.Response.Entities {
		name := e.EntityID
		if name == "" {
			name = e.MatchedText
		}
		if name != "" {
			entities = append(entities, name)
		}
	}
	topics := make([]string, 0, len(resp.Response.Topics))
	for _, t := range resp.Response.Topics {
		if t.Label != "" {
			topics = append(topics, t.Label)
		}
	}

	return model.NewSentimentResult(score, entities, topics), nil
}
