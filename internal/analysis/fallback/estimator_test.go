package fallback

import (
	"slices"
	"sync"
	"testing"

	"emotiai/internal/model"
)

type fixedRand struct {
	intN  int
	float float64
}

func (f fixedRand) IntN(n int) int   { return f.intN % n }
func (f fixedRand) Float64() float64 { return f.float }

func TestEstimateEmotion(t *testing.T) {
	e := New()

	tests := []struct {
		name     string
		text     string
		dominant model.EmotionLabel
		raised   []model.EmotionLabel
	}{
		{"joy keyword", "I am so happy today", model.EmotionJoy, []model.EmotionLabel{model.EmotionJoy}},
		{"sadness keyword uppercase", "This is BAD", model.EmotionSadness, []model.EmotionLabel{model.EmotionSadness}},
		{"anger keyword", "I'm frustrated with this", model.EmotionAnger, []model.EmotionLabel{model.EmotionAnger}},
		{"joy and sadness tie keeps first", "good and bad", model.EmotionJoy, []model.EmotionLabel{model.EmotionJoy, model.EmotionSadness}},
		{"no keyword", "the weather is mild", model.EmotionJoy, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := e.EstimateEmotion(tt.text)
			if err := set.Validate(); err != nil {
				t.Fatalf("invalid set: %v", err)
			}
			for i, l := range model.EmotionLabels() {
				if set[i].Label != l {
					t.Fatalf("position %d: expected %s, got %s", i, l, set[i].Label)
				}
				want := emotionBaseline
				if slices.Contains(tt.raised, l) {
					want = emotionKeywordScore
				}
				if set[i].Score != want {
					t.Errorf("%s: expected %v, got %v", l, want, set[i].Score)
				}
			}
			if d := set.Dominant(); d.Label != tt.dominant {
				t.Errorf("expected dominant %s, got %s", tt.dominant, d.Label)
			}
		})
	}
}

func TestEstimateEmotion_RandomBaseline(t *testing.T) {
	e := New(WithRandomBaseline(true), WithRand(fixedRand{float: 0.5}))
	set := e.EstimateEmotion("I am mad")

	for _, s := range set {
		if s.Label == model.EmotionAnger {
			if s.Score != emotionKeywordScore {
				t.Errorf("anger: expected %v, got %v", emotionKeywordScore, s.Score)
			}
			continue
		}
		if s.Score < 0.1 || s.Score >= 0.4 {
			t.Errorf("%s: baseline %v not in [0.1, 0.4)", s.Label, s.Score)
		}
	}
}

func TestEstimateSentiment(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		text  string
		score float64
		label model.SentimentLabel
	}{
		{"neutral text", "the meeting is at noon", 0, model.SentimentNeutral},
		{"two positives stay neutral", "good and great", 0.2, model.SentimentNeutral},
		{"four positives", "Good, great, excellent and amazing!", 0.4, model.SentimentPositive},
		{"terrible and awful", "terrible and awful", -0.2, model.SentimentNeutral},
		{"four negatives", "a terrible, awful, horrible and bad day", -0.4, model.SentimentNegative},
		{"mixed cancels", "I love it but hate the price", 0, model.SentimentNeutral},
		{"repeated word counts once", "good good good good", 0.1, model.SentimentNeutral},
		{"three positives at threshold", "good great excellent", 0.3, model.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.EstimateSentiment(tt.text)
			if got.Score != tt.score {
				t.Errorf("expected score %v, got %v", tt.score, got.Score)
			}
			if got.Label != tt.label {
				t.Errorf("expected label %s, got %s", tt.label, got.Label)
			}
			if got.Entities == nil || got.Topics == nil || len(got.Entities)+len(got.Topics) != 0 {
				t.Errorf("expected empty entities and topics, got %v %v", got.Entities, got.Topics)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("invalid result: %v", err)
			}
		})
	}
}

func TestEstimateResponse(t *testing.T) {
	tests := []struct {
		name    string
		emotion string
		setKey  string
	}{
		{"joy", "joy", "joy"},
		{"sadness", "sadness", "sadness"},
		{"fear", "fear", "fear"},
		{"surprise uses default", "surprise", defaultResponseKey},
		{"empty uses default", "", defaultResponseKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				e := New(WithRand(fixedRand{intN: i}))
				got := e.EstimateResponse("whatever", tt.emotion)
				if got != cannedResponses[tt.setKey][i] {
					t.Errorf("pick %d: expected %q, got %q", i, cannedResponses[tt.setKey][i], got)
				}
			}
		})
	}
}

func TestEstimateResponse_SeededIsReproducible(t *testing.T) {
	a := New(WithRand(NewRand(7)))
	b := New(WithRand(NewRand(7)))
	for i := 0; i < 10; i++ {
		if x, y := a.EstimateResponse("t", "anger"), b.EstimateResponse("t", "anger"); x != y {
			t.Fatalf("draw %d differs: %q vs %q", i, x, y)
		}
	}
}

func TestNewRand_Concurrent(t *testing.T) {
	r := NewRand(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if n := r.IntN(3); n < 0 || n >= 3 {
					t.Errorf("IntN out of range: %d", n)
				}
				if f := r.Float64(); f < 0 || f >= 1 {
					t.Errorf("Float64 out of range: %v", f)
				}
			}
		}()
	}
	wg.Wait()
}

func TestCannedResponses_ReturnsCopy(t *testing.T) {
	got := CannedResponses("joy")
	got[0] = "mutated"
	if cannedResponses["joy"][0] == "mutated" {
		t.Fatal("CannedResponses leaked the internal slice")
	}
}
