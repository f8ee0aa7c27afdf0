package usecase

import (
	"context"

	"emotiai/internal/analysis"
	"emotiai/internal/analysis/fallback"
	"emotiai/internal/analysis/upstream"
	"emotiai/internal/model"
)

// GenerateResponse asks the response adapter for a reply, or picks a canned one when it fails.
func (uc *implUseCase) GenerateResponse(ctx context.Context, input analysis.GenerateResponseInput) (analysis.GenerateResponseOutput, error) {
	if err := analysis.ValidateText(input.Text); err != nil {
		return analysis.GenerateResponseOutput{}, err
	}

	reply, err := uc.adapters.Response.GenerateResponse(ctx, upstream.ResponseRequest{
		Text:    input.Text,
		Context: input.Context,
		Emotion: input.Emotion,
	})
	if err == nil {
		return analysis.GenerateResponseOutput{
			OriginalText:    input.Text,
			Context:         input.Context,
			DetectedEmotion: input.Emotion,
			AIResponse:      reply.Text,
			ResponseStyle:   reply.Style,
			Source:          model.SourceProvider,
		}, nil
	}

	if !uc.degrade(ctx, "GenerateResponse", err) {
		uc.l.Errorf(ctx, "usecase.GenerateResponse: %v", err)
		return analysis.GenerateResponseOutput{}, err
	}
	return analysis.GenerateResponseOutput{
		OriginalText:    input.Text,
		Context:         input.Context,
		DetectedEmotion: input.Emotion,
		AIResponse:      uc.estimator.EstimateResponse(input.Text, input.Emotion),
		ResponseStyle:   fallback.ResponseStyle,
		Source:          model.SourceFallback,
		Note:            model.NoteFallback,
	}, nil
}
