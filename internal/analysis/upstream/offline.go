package upstream

import (
	"context"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
)

// ProviderOffline names the adapter used when a capability is configured without a provider.
const ProviderOffline = "offline"

// Offline implements every adapter interface and fails each call with KindDisabled,
// so the orchestrator serves fallback results.
type Offline struct{}

func (Offline) Name() string {
	return ProviderOffline
}

func (Offline) disabled(text string) error {
	if err := analysis.ValidateText(text); err != nil {
		return err
	}
	return &Failure{Provider: ProviderOffline, Kind: KindDisabled, Err: ErrDisabled}
}

func (o Offline) DetectEmotion(ctx context.Context, text string) (model.EmotionScoreSet, error) {
	return nil, o.disabled(text)
}

func (o Offline) AnalyzeSentiment(ctx context.Context, text string) (model.SentimentResult, error) {
	return model.SentimentResult{}, o.disabled(text)
}

func (o Offline) GenerateResponse(ctx context.Context, req ResponseRequest) (Reply, error) {
	return Reply{}, o.disabled(req.Text)
}
