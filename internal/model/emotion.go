package model

import "fmt"

// EmotionLabel is one of the fixed emotion classes.
type EmotionLabel string

const (
	EmotionJoy      EmotionLabel = "joy"
	EmotionSadness  EmotionLabel = "sadness"
	EmotionAnger    EmotionLabel = "anger"
	EmotionFear     EmotionLabel = "fear"
	EmotionSurprise EmotionLabel = "surprise"
	EmotionLove     EmotionLabel = "love"
)

// emotionLabels is the enumeration order used for result sets and tie breaking.
var emotionLabels = []EmotionLabel{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionSurprise,
	EmotionLove,
}

// EmotionLabels returns the emotion labels in enumeration order.
func EmotionLabels() []EmotionLabel {
	out := make([]EmotionLabel, len(emotionLabels))
	copy(out, emotionLabels)
	return out
}

// Valid reports whether l belongs to the emotion set.
func (l EmotionLabel) Valid() bool {
	for _, e := range emotionLabels {
		if e == l {
			return true
		}
	}
	return false
}

// EmotionScore is one labeled score in [0,1].
type EmotionScore struct {
	Label EmotionLabel `json:"label"`
	Score float64      `json:"score"`
}

// Validate checks the label and the score range.
func (s EmotionScore) Validate() error {
	if !s.Label.Valid() {
		return fmt.Errorf("%w: emotion %q", ErrInvalidLabel, s.Label)
	}
	if s.Score < 0 || s.Score > 1 {
		return fmt.Errorf("%w: emotion %s score %v not in [0,1]", ErrScoreOutOfRange, s.Label, s.Score)
	}
	return nil
}

// EmotionScoreSet covers every emotion label exactly once, in enumeration order.
type EmotionScoreSet []EmotionScore

// NewEmotionScoreSet builds a set in enumeration order with the same score for every label.
func NewEmotionScoreSet(baseline float64) EmotionScoreSet {
	set := make(EmotionScoreSet, len(emotionLabels))
	for i, l := range emotionLabels {
		set[i] = EmotionScore{Label: l, Score: baseline}
	}
	return set
}

// Validate checks every entry and that each label appears exactly once.
func (s EmotionScoreSet) Validate() error {
	if len(s) != len(emotionLabels) {
		return fmt.Errorf("%w: got %d entries", ErrIncompleteSet, len(s))
	}
	seen := make(map[EmotionLabel]bool, len(s))
	for _, e := range s {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.Label] {
			return fmt.Errorf("%w: %s repeated", ErrIncompleteSet, e.Label)
		}
		seen[e.Label] = true
	}
	return nil
}

// Set overrides the score of label. Unknown labels are ignored.
func (s EmotionScoreSet) Set(label EmotionLabel, score float64) {
	for i := range s {
		if s[i].Label == label {
			s[i].Score = score
			return
		}
	}
}

// Dominant returns the entry with the maximum score.
// Ties resolve to the first maximum in set order; an empty set returns the zero value.
func (s EmotionScoreSet) Dominant() EmotionScore {
	if len(s) == 0 {
		return EmotionScore{}
	}
	best := s[0]
	for _, e := range s[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best
}
