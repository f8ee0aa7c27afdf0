package upstream

import (
	"context"

	"emotiai/internal/model"
)

// EmotionAdapter classifies text into the fixed emotion set.
type EmotionAdapter interface {
	Name() string
	DetectEmotion(ctx context.Context, text string) (model.EmotionScoreSet, error)
}

// SentimentAdapter scores text and extracts entities and topics.
type SentimentAdapter interface {
	Name() string
	AnalyzeSentiment(ctx context.Context, text string) (model.SentimentResult, error)
}

// ResponseAdapter generates a conversational reply.
type ResponseAdapter interface {
	Name() string
	GenerateResponse(ctx context.Context, req ResponseRequest) (Reply, error)
}

// ResponseRequest is the input of a generation call. Context and Emotion are optional.
type ResponseRequest struct {
	Text    string
	Context string
	Emotion string
}

// Reply is a generated response and its detected style.
type Reply struct {
	Text  string
	Style model.ResponseStyle
}

// Adapters groups one adapter per capability.
type Adapters struct {
	Emotion   EmotionAdapter
	Sentiment SentimentAdapter
	Response  ResponseAdapter
}
