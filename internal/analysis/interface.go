package analysis

import "context"

// UseCase is the request orchestrator: one entry point per capability.
// Only errors wrapping ErrValidation reach the caller from the shipped adapters;
// provider failures are answered with fallback results.
type UseCase interface {
	DetectEmotion(ctx context.Context, input DetectEmotionInput) (DetectEmotionOutput, error)
	AnalyzeSentiment(ctx context.Context, input AnalyzeSentimentInput) (AnalyzeSentimentOutput, error)
	GenerateResponse(ctx context.Context, input GenerateResponseInput) (GenerateResponseOutput, error)
}
