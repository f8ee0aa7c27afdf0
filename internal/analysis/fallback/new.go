package fallback

import "emotiai/internal/model"

// Estimator computes local results from keyword heuristics. It never calls out
// and never fails for non-empty text.
type Estimator struct {
	rnd            Rand
	randomBaseline bool
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithRand replaces the default randomness source.
func WithRand(r Rand) Option {
	return func(e *Estimator) {
		if r != nil {
			e.rnd = r
		}
	}
}

// WithRandomBaseline draws each emotion baseline from [0.1, 0.4) instead of using the fixed baseline.
func WithRandomBaseline(enabled bool) Option {
	return func(e *Estimator) {
		e.randomBaseline = enabled
	}
}

// New creates an Estimator.
func New(opts ...Option) *Estimator {
	e := &Estimator{rnd: NewRand(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

const (
	emotionBaseline     = 0.2
	emotionKeywordScore = 0.9

	randomBaselineMin   = 0.1
	randomBaselineRange = 0.3
)

// emotionKeywords maps a label to the substrings that raise it to emotionKeywordScore.
var emotionKeywords = []struct {
	label model.EmotionLabel
	words []string
}{
	{model.EmotionJoy, []string{"happy", "good", "great"}},
	{model.EmotionSadness, []string{"sad", "bad", "upset"}},
	{model.EmotionAnger, []string{"angry", "mad", "frustrated"}},
}

var (
	positiveWords = []string{"good", "great", "excellent", "happy", "love", "amazing", "wonderful"}
	negativeWords = []string{"bad", "terrible", "awful", "hate", "angry", "sad", "horrible"}
)
