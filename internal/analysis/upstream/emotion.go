package upstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
	"emotiai/pkg/huggingface"
)

const providerHuggingFace = "huggingface"

// Classifier is the subset of huggingface.Client the emotion adapter needs.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]huggingface.Classification, error)
}

type huggingFaceEmotion struct {
	client  Classifier
	timeout time.Duration
}

// NewHuggingFaceEmotion creates an EmotionAdapter backed by the Inference API.
func NewHuggingFaceEmotion(client Classifier, timeout time.Duration) EmotionAdapter {
	return &huggingFaceEmotion{client: client, timeout: timeout}
}

func (a *huggingFaceEmotion) Name() string {
	return providerHuggingFace
}

func (a *huggingFaceEmotion) DetectEmotion(ctx context.Context, text string) (model.EmotionScoreSet, error) {
	if err := analysis.ValidateText(text); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	classes, err := a.client.Classify(ctx, text)
	if err != nil {
		return nil, Classify(providerHuggingFace, err)
	}
	return normalizeEmotions(classes)
}

// normalizeEmotions keeps the enumerated labels in enumeration order. Missing
// labels score 0 and foreign labels are dropped; a payload without any
// enumerated label, or with a score outside [0,1], is malformed.
func normalizeEmotions(classes []huggingface.Classification) (model.EmotionScoreSet, error) {
	set := model.NewEmotionScoreSet(0)
	seen := make(map[model.EmotionLabel]bool, len(classes))

	for _, c := range classes {
		label := model.EmotionLabel(strings.ToLower(strings.TrimSpace(c.Label)))
		if !label.Valid() || seen[label] {
			continue
		}
		if c.Score < 0 || c.Score > 1 {
			return nil, malformed(providerHuggingFace, fmt.Sprintf("score %v for %s not in [0,1]", c.Score, label))
		}
		set.Set(label, c.Score)
		seen[label] = true
	}

	if len(seen) == 0 {
		return nil, malformed(providerHuggingFace, "no known emotion label in payload")
	}
	return set, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
