package analysis

import "emotiai/internal/model"

// --- UseCase Inputs ---

type DetectEmotionInput struct {
	Text string
}

type AnalyzeSentimentInput struct {
	Text string
}

// GenerateResponseInput carries optional conversational context and a pre-detected emotion label.
type GenerateResponseInput struct {
	Text    string
	Context string
	Emotion string
}

// --- UseCase Outputs ---

type DetectEmotionOutput struct {
	Text            string
	Emotions        model.EmotionScoreSet
	DominantEmotion model.EmotionLabel
	Confidence      float64
	Source          model.Source
	Note            string
}

type AnalyzeSentimentOutput struct {
	Text      string
	Sentiment model.SentimentResult
	Source    model.Source
	Note      string
}

type GenerateResponseOutput struct {
	OriginalText    string
	Context         string
	DetectedEmotion string
	AIResponse      string
	ResponseStyle   model.ResponseStyle
	Source          model.Source
	Note            string
}
