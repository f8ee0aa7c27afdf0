package http

import (
	"emotiai/internal/analysis"
	"emotiai/internal/analysis/upstream"
)

// --- Request DTOs ---

// textReq leaves text unvalidated; emptiness is reported by the use case.
type textReq struct {
	Text string `json:"text"`
}

func (r textReq) toDetectEmotionInput() analysis.DetectEmotionInput {
	return analysis.DetectEmotionInput{Text: r.Text}
}

func (r textReq) toAnalyzeSentimentInput() analysis.AnalyzeSentimentInput {
	return analysis.AnalyzeSentimentInput{Text: r.Text}
}

type generateReq struct {
	Text    string `json:"text"`
	Context string `json:"context"`
	Emotion string `json:"emotion"`
}

func (r generateReq) toInput() analysis.GenerateResponseInput {
	return analysis.GenerateResponseInput{
		Text:    r.Text,
		Context: r.Context,
		Emotion: r.Emotion,
	}
}

// --- Response DTOs ---

type emotionScoreResp struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type detectEmotionResp struct {
	Text            string             `json:"text"`
	Emotions        []emotionScoreResp `json:"emotions"`
	DominantEmotion string             `json:"dominant_emotion"`
	Confidence      float64            `json:"confidence"`
	Source          string             `json:"source"`
	Note            string             `json:"note,omitempty"`
}

func (h *handler) newDetectEmotionResp(out analysis.DetectEmotionOutput) detectEmotionResp {
	emotions := make([]emotionScoreResp, len(out.Emotions))
	for i, e := range out.Emotions {
		emotions[i] = emotionScoreResp{Label: string(e.Label), Score: e.Score}
	}
	return detectEmotionResp{
		Text:            out.Text,
		Emotions:        emotions,
		DominantEmotion: string(out.DominantEmotion),
		Confidence:      out.Confidence,
		Source:          string(out.Source),
		Note:            out.Note,
	}
}

type analyzeSentimentResp struct {
	Text           string   `json:"text"`
	SentimentScore float64  `json:"sentiment_score"`
	SentimentLabel string   `json:"sentiment_label"`
	Entities       []string `json:"entities"`
	Topics         []string `json:"topics"`
	Source         string   `json:"source"`
	Note           string   `json:"note,omitempty"`
}

func (h *handler) newAnalyzeSentimentResp(out analysis.AnalyzeSentimentOutput) analyzeSentimentResp {
	return analyzeSentimentResp{
		Text:           out.Text,
		SentimentScore: out.Sentiment.Score,
		SentimentLabel: string(out.Sentiment.Label),
		Entities:       nonNil(out.Sentiment.Entities),
		Topics:         nonNil(out.Sentiment.Topics),
		Source:         string(out.Source),
		Note:           out.Note,
	}
}

type generateResponseResp struct {
	OriginalText    string `json:"original_text"`
	Context         string `json:"context"`
	DetectedEmotion string `json:"detected_emotion"`
	AIResponse      string `json:"ai_response"`
	ResponseStyle   string `json:"response_style"`
	Source          string `json:"source"`
	Note            string `json:"note,omitempty"`
}

func (h *handler) newGenerateResponseResp(out analysis.GenerateResponseOutput) generateResponseResp {
	return generateResponseResp{
		OriginalText:    out.OriginalText,
		Context:         out.Context,
		DetectedEmotion: out.DetectedEmotion,
		AIResponse:      out.AIResponse,
		ResponseStyle:   string(out.ResponseStyle),
		Source:          string(out.Source),
		Note:            out.Note,
	}
}

type schemasResp struct {
	Contracts []upstream.Contract `json:"contracts"`
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
