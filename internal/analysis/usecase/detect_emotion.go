package usecase

import (
	"context"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
)

// DetectEmotion classifies text through the emotion adapter, or the local estimator when it fails.
func (uc *implUseCase) DetectEmotion(ctx context.Context, input analysis.DetectEmotionInput) (analysis.DetectEmotionOutput, error) {
	if err := analysis.ValidateText(input.Text); err != nil {
		return analysis.DetectEmotionOutput{}, err
	}

	out := analysis.DetectEmotionOutput{Text: input.Text, Source: model.SourceProvider}

	scores, err := uc.adapters.Emotion.DetectEmotion(ctx, input.Text)
	if err != nil {
		if !uc.degrade(ctx, "DetectEmotion", err) {
			uc.l.Errorf(ctx, "usecase.DetectEmotion: %v", err)
			return analysis.DetectEmotionOutput{}, err
		}
		scores = uc.estimator.EstimateEmotion(input.Text)
		out.Source = model.SourceFallback
		out.Note = model.NoteFallback
	}

	dominant := scores.Dominant()
	out.Emotions = scores
	out.DominantEmotion = dominant.Label
	out.Confidence = dominant.Score
	return out, nil
}
