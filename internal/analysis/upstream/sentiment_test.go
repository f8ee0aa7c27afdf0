package upstream

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
	"emotiai/pkg/googlenl"
	"emotiai/pkg/textrazor"
)

func TestTextRazorSentiment_AnalyzeSentiment(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		client := &mockAnalyzer{resp: &textrazor.AnalyzeResponse{
			Ok: true,
			Response: &textrazor.Analysis{
				Sentiment: &textrazor.Sentiment{Score: 0.6},
				Entities: []textrazor.Entity{
					{EntityID: "Paris", MatchedText: "paris"},
					{MatchedText: "croissant"},
					{},
				},
				Topics: []textrazor.Topic{{Label: "Travel"}, {Label: ""}},
			},
		}}
		a := NewTextRazorSentiment(client, time.Second)

		got, err := a.AnalyzeSentiment(context.Background(), "I love Paris")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Score != 0.6 || got.Label != model.SentimentPositive {
			t.Errorf("unexpected sentiment %v %s", got.Score, got.Label)
		}
		if !reflect.DeepEqual(got.Entities, []string{"Paris", "croissant"}) {
			t.Errorf("unexpected entities %v", got.Entities)
		}
		if !reflect.DeepEqual(got.Topics, []string{"Travel"}) {
			t.Errorf("unexpected topics %v", got.Topics)
		}
	})

	t.Run("Missing Fields Default", func(t *testing.T) {
		client := &mockAnalyzer{resp: &textrazor.AnalyzeResponse{Response: &textrazor.Analysis{}}}
		got, err := NewTextRazorSentiment(client, time.Second).AnalyzeSentiment(context.Background(), "hm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Score != 0 || got.Label != model.SentimentNeutral || len(got.Entities) != 0 || len(got.Topics) != 0 {
			t.Errorf("unexpected result %+v", got)
		}
		if got.Entities == nil || got.Topics == nil {
			t.Errorf("expected empty, non-nil slices")
		}
	})

	t.Run("Score Out Of Range", func(t *testing.T) {
		client := &mockAnalyzer{resp: &textrazor.AnalyzeResponse{Response: &textrazor.Analysis{Sentiment: &textrazor.Sentiment{Score: -3}}}}
		_, err := NewTextRazorSentiment(client, time.Second).AnalyzeSentiment(context.Background(), "hm")
		var f *Failure
		if !errors.As(err, &f) || f.Kind != KindMalformed {
			t.Fatalf("expected malformed failure, got %v", err)
		}
	})

	t.Run("Transport Error", func(t *testing.T) {
		client := &mockAnalyzer{err: errors.New("connection reset")}
		_, err := NewTextRazorSentiment(client, time.Second).AnalyzeSentiment(context.Background(), "hm")
		var f *Failure
		if !errors.As(err, &f) || f.Kind != KindTransport || f.Provider != "textrazor" {
			t.Fatalf("expected textrazor transport failure, got %v", err)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		client := &mockAnalyzer{}
		_, err := NewTextRazorSentiment(client, time.Second).AnalyzeSentiment(context.Background(), "")
		if !errors.Is(err, analysis.ErrValidation) || client.calls != 0 {
			t.Fatalf("expected validation error without call, got %v (%d calls)", err, client.calls)
		}
	})
}

func TestGoogleSentiment_AnalyzeSentiment(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		client := &mockAnnotator{ann: &googlenl.Annotation{
			SentimentScore: -0.7,
			Entities:       []googlenl.Entity{{Name: "Monday"}},
			Categories:     []googlenl.Category{{Name: "/People & Society"}},
		}}
		got, err := NewGoogleSentiment(client, time.Second).AnalyzeSentiment(context.Background(), "I hate Mondays")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Label != model.SentimentNegative {
			t.Errorf("expected negative, got %s", got.Label)
		}
		if !reflect.DeepEqual(got.Entities, []string{"Monday"}) || !reflect.DeepEqual(got.Topics, []string{"/People & Society"}) {
			t.Errorf("unexpected entities/topics %v %v", got.Entities, got.Topics)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		client := &mockAnnotator{err: &googlenl.APIError{StatusCode: 403, Message: "denied"}}
		_, err := NewGoogleSentiment(client, time.Second).AnalyzeSentiment(context.Background(), "x")
		var f *Failure
		if !errors.As(err, &f) || f.Kind != KindStatus {
			t.Fatalf("expected status failure, got %v", err)
		}
	})
}
