package fallback

import (
	"strings"

	"emotiai/internal/model"
)

// EstimateEmotion scores every label with the baseline, then raises the labels
// whose keywords occur in text (case-insensitive substring match).
func (e *Estimator) EstimateEmotion(text string) model.EmotionScoreSet {
	scores := model.NewEmotionScoreSet(emotionBaseline)
	if e.randomBaseline {
		for i := range scores {
			scores[i].Score = randomBaselineMin + e.rnd.Float64()*randomBaselineRange
		}
	}

	lower := strings.ToLower(text)
	for _, group := range emotionKeywords {
		if containsAny(lower, group.words) {
			scores.Set(group.label, emotionKeywordScore)
		}
	}
	return scores
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
