package upstream

import (
	"context"
	"fmt"
	"time"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
	"emotiai/pkg/googlenl"
)

const providerGoogle = "google"

// Annotator is the subset of googlenl.Client the sentiment adapter needs.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*googlenl.Annotation, error)
}

type googleSentiment struct {
	client  Annotator
	timeout time.Duration
}

// NewGoogleSentiment creates a SentimentAdapter backed by Cloud Natural Language.
// Entity names become entities and classification categories become topics.
func NewGoogleSentiment(client Annotator, timeout time.Duration) SentimentAdapter {
	return &googleSentiment{client: client, timeout: timeout}
}

func (a *googleSentiment) Name() string {
	return providerGoogle
}

func (a *googleSentiment) AnalyzeSentiment(ctx context.Context, text string) (model.SentimentResult, error) {
	if err := analysis.ValidateText(text); err != nil {
		return model.SentimentResult{}, err
	}

	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	ann, err := a.client.Annotate(ctx, text)
	if err != nil {
		return model.SentimentResult{}, Classify(providerGoogle, err)
	}
	if ann == nil {
		return model.SentimentResult{}, malformed(providerGoogle, "empty annotation")
	}
	if ann.SentimentScore < -1 || ann.SentimentScore > 1 {
		return model.SentimentResult{}, malformed(providerGoogle, fmt.Sprintf("sentiment score %v not in [-1,1]", ann.SentimentScore))
	}

	entities := make([]string, 0, len(ann.Entities))
	for _, e := range ann.Entities {
		if e.Name != "" {
			entities = append(entities, e.Name)
		}
	}
	topics := make([]string, 0, len(ann.Categories))
	for _, c := range ann.Categories {
		if c.Name != "" {
			topics = append(topics, c.Name)
		}
	}

	return model.NewSentimentResult(ann.SentimentScore, entities, topics), nil
}
