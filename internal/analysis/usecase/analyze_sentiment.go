package usecase

import (
	"context"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
)

// AnalyzeSentiment scores text through the sentiment adapter, or the local estimator when it fails.
func (uc *implUseCase) AnalyzeSentiment(ctx context.Context, input analysis.AnalyzeSentimentInput) (analysis.AnalyzeSentimentOutput, error) {
	if err := analysis.ValidateText(input.Text); err != nil {
		return analysis.AnalyzeSentimentOutput{}, err
	}

	result, err := uc.adapters.Sentiment.AnalyzeSentiment(ctx, input.Text)
	if err == nil {
		return analysis.AnalyzeSentimentOutput{
			Text:      input.Text,
			Sentiment: result,
			Source:    model.SourceProvider,
		}, nil
	}

	if !uc.degrade(ctx, "AnalyzeSentiment", err) {
		uc.l.Errorf(ctx, "usecase.AnalyzeSentiment: %v", err)
		return analysis.AnalyzeSentimentOutput{}, err
	}
	return analysis.AnalyzeSentimentOutput{
		Text:      input.Text,
		Sentiment: uc.estimator.EstimateSentiment(input.Text),
		Source:    model.SourceFallback,
		Note:      model.NoteFallback,
	}, nil
}
