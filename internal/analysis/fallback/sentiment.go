package fallback

import (
	"strings"

	"emotiai/internal/model"
)

// EstimateSentiment adds 0.1 for every positive word and subtracts 0.1 for every
// negative word present in text, then clamps to [-1,1].
// Each word counts once no matter how often it occurs.
func (e *Estimator) EstimateSentiment(text string) model.SentimentResult {
	lower := strings.ToLower(text)

	net := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			net++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			net--
		}
	}

	// Tenths are accumulated as an integer so 3 matches give exactly 0.3.
	score := model.ClampScore(float64(net) / 10)
	return model.NewSentimentResult(score, nil, nil)
}
