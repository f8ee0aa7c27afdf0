package model

import "fmt"

// SentimentLabel is one of the three sentiment classes.
type SentimentLabel string

const (
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentPositive SentimentLabel = "positive"
)

// Label thresholds: strictly above PositiveThreshold is positive,
// strictly below NegativeThreshold is negative.
const (
	PositiveThreshold = 0.3
	NegativeThreshold = -0.3
)

// SentimentLabelFor derives the label from a score.
func SentimentLabelFor(score float64) SentimentLabel {
	switch {
	case score > PositiveThreshold:
		return SentimentPositive
	case score < NegativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Valid reports whether l belongs to the sentiment set.
func (l SentimentLabel) Valid() bool {
	switch l {
	case SentimentNegative, SentimentNeutral, SentimentPositive:
		return true
	}
	return false
}

// SentimentResult is the normalized sentiment of a text.
type SentimentResult struct {
	Score    float64        `json:"score"`
	Label    SentimentLabel `json:"label"`
	Entities []string       `json:"entities"`
	Topics   []string       `json:"topics"`
}

// NewSentimentResult derives the label from score and normalizes nil slices to empty ones.
func NewSentimentResult(score float64, entities, topics []string) SentimentResult {
	if entities == nil {
		entities = []string{}
	}
	if topics == nil {
		topics = []string{}
	}
	return SentimentResult{
		Score:    score,
		Label:    SentimentLabelFor(score),
		Entities: entities,
		Topics:   topics,
	}
}

// Validate checks the score range, the label and that the label matches the score.
func (r SentimentResult) Validate() error {
	if r.Score < -1 || r.Score > 1 {
		return fmt.Errorf("%w: sentiment score %v not in [-1,1]", ErrScoreOutOfRange, r.Score)
	}
	if !r.Label.Valid() {
		return fmt.Errorf("%w: sentiment %q", ErrInvalidLabel, r.Label)
	}
	if want := SentimentLabelFor(r.Score); r.Label != want {
		return fmt.Errorf("%w: sentiment %q does not match score %v", ErrInvalidLabel, r.Label, r.Score)
	}
	return nil
}

// ClampScore limits a sentiment score to [-1,1].
func ClampScore(score float64) float64 {
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}
