package textrazor_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"emotiai/pkg/textrazor"
)

func TestClient_Analyze(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-TextRazor-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("extractors") != textrazor.DefaultExtractors {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch r.PostForm.Get("text") {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		case "no_response":
			w.Write([]byte(`{"ok":true}`))
		case "not_json":
			w.Write([]byte(`<html>oops</html>`))
		default:
			w.Write([]byte(`{
				"ok": true,
				"response": {
					"sentiment": {"score": 0.65},
					"entities": [{"entityId": "Paris", "matchedText": "paris"}],
					"topics": [{"label": "Travel", "score": 0.8}]
				}
			}`))
		}
	}))
	defer ts.Close()

	client, err := textrazor.New(textrazor.Config{APIKey: "test-key", URL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		out, err := client.Analyze(context.Background(), "I loved Paris")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response.Sentiment == nil || out.Response.Sentiment.Score != 0.65 {
			t.Errorf("unexpected sentiment: %+v", out.Response.Sentiment)
		}
		if len(out.Response.Entities) != 1 || out.Response.Entities[0].EntityID != "Paris" {
			t.Errorf("unexpected entities: %+v", out.Response.Entities)
		}
		if len(out.Response.Topics) != 1 || out.Response.Topics[0].Label != "Travel" {
			t.Errorf("unexpected topics: %+v", out.Response.Topics)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Analyze(context.Background(), "cause_500")
		var apiErr *textrazor.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected APIError 500, got %v", err)
		}
	})

	t.Run("Missing Response Object", func(t *testing.T) {
		_, err := client.Analyze(context.Background(), "no_response")
		if !errors.Is(err, textrazor.ErrInvalidResponse) {
			t.Fatalf("expected ErrInvalidResponse, got %v", err)
		}
	})

	t.Run("Not JSON", func(t *testing.T) {
		_, err := client.Analyze(context.Background(), "not_json")
		if !errors.Is(err, textrazor.ErrInvalidResponse) {
			t.Fatalf("expected ErrInvalidResponse, got %v", err)
		}
	})

	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := textrazor.New(textrazor.Config{}); err == nil {
			t.Fatalf("expected error for missing api key")
		}
	})
}
