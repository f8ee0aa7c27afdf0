package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
	"emotiai/pkg/huggingface"
)

func TestHuggingFaceEmotion_DetectEmotion(t *testing.T) {
	tests := []struct {
		name     string
		classes  []huggingface.Classification
		err      error
		wantKind Kind
		want     map[model.EmotionLabel]float64
	}{
		{
			name: "normalizes order and fills missing labels",
			classes: []huggingface.Classification{
				{Label: "love", Score: 0.05},
				{Label: "JOY", Score: 0.8},
				{Label: "neutral", Score: 0.1},
				{Label: "fear", Score: 0.05},
			},
			want: map[model.EmotionLabel]float64{
				model.EmotionJoy: 0.8, model.EmotionSadness: 0, model.EmotionAnger: 0,
				model.EmotionFear: 0.05, model.EmotionSurprise: 0, model.EmotionLove: 0.05,
			},
		},
		{
			name:     "score out of range",
			classes:  []huggingface.Classification{{Label: "joy", Score: 1.2}},
			wantKind: KindMalformed,
		},
		{
			name:     "no known label",
			classes:  []huggingface.Classification{{Label: "disgust", Score: 0.9}},
			wantKind: KindMalformed,
		},
		{
			name:     "status error",
			err:      &huggingface.APIError{StatusCode: http.StatusServiceUnavailable},
			wantKind: KindStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClassifier{classes: tt.classes, err: tt.err}
			a := NewHuggingFaceEmotion(client, time.Second)

			set, err := a.DetectEmotion(context.Background(), "some text")
			if client.calls != 1 {
				t.Errorf("expected one call, got %d", client.calls)
			}
			if tt.wantKind != "" {
				var f *Failure
				if !errors.As(err, &f) || f.Kind != tt.wantKind {
					t.Fatalf("expected %s failure, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := set.Validate(); err != nil {
				t.Fatalf("invalid set: %v", err)
			}
			for i, l := range model.EmotionLabels() {
				if set[i].Label != l || set[i].Score != tt.want[l] {
					t.Errorf("position %d: expected %s=%v, got %s=%v", i, l, tt.want[l], set[i].Label, set[i].Score)
				}
			}
		})
	}
}

func TestHuggingFaceEmotion_ValidationMakesNoCall(t *testing.T) {
	client := &mockClassifier{}
	a := NewHuggingFaceEmotion(client, time.Second)

	_, err := a.DetectEmotion(context.Background(), "   ")
	if !errors.Is(err, analysis.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if client.calls != 0 {
		t.Errorf("expected no outbound call, got %d", client.calls)
	}
}

func TestHuggingFaceEmotion_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	client, err := huggingface.New(huggingface.Config{Token: "t", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := NewHuggingFaceEmotion(client, 50*time.Millisecond)

	_, err = a.DetectEmotion(context.Background(), "I'm happy")
	var f *Failure
	if !errors.As(err, &f) || f.Kind != KindTimeout {
		t.Fatalf("expected timeout failure, got %v", err)
	}
}
