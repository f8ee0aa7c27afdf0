package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"emotiai/internal/analysis"
	"emotiai/internal/middleware"
	"emotiai/internal/model"
	"emotiai/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUseCase struct {
	emotion   analysis.DetectEmotionOutput
	sentiment analysis.AnalyzeSentimentOutput
	reply     analysis.GenerateResponseOutput
	err       error

	lastGenerate analysis.GenerateResponseInput
}

func (m *mockUseCase) DetectEmotion(ctx context.Context, input analysis.DetectEmotionInput) (analysis.DetectEmotionOutput, error) {
	if err := analysis.ValidateText(input.Text); err != nil {
		return analysis.DetectEmotionOutput{}, err
	}
	return m.emotion, m.err
}

func (m *mockUseCase) AnalyzeSentiment(ctx context.Context, input analysis.AnalyzeSentimentInput) (analysis.AnalyzeSentimentOutput, error) {
	if err := analysis.ValidateText(input.Text); err != nil {
		return analysis.AnalyzeSentimentOutput{}, err
	}
	return m.sentiment, m.err
}

func (m *mockUseCase) GenerateResponse(ctx context.Context, input analysis.GenerateResponseInput) (analysis.GenerateResponseOutput, error) {
	m.lastGenerate = input
	if err := analysis.ValidateText(input.Text); err != nil {
		return analysis.GenerateResponseOutput{}, err
	}
	return m.reply, m.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func serve(t *testing.T, uc *mockUseCase, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestDetectEmotion(t *testing.T) {
	scores := model.NewEmotionScoreSet(0.2)
	scores.Set(model.EmotionJoy, 0.9)
	uc := &mockUseCase{emotion: analysis.DetectEmotionOutput{
		Text:            "great day",
		Emotions:        scores,
		DominantEmotion: model.EmotionJoy,
		Confidence:      0.9,
		Source:          model.SourceFallback,
		Note:            model.NoteFallback,
	}}

	w, env := serve(t, uc, http.MethodPost, "/api/detect-emotion", `{"text":"great day"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got detectEmotionResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(got.Emotions) != 6 || got.Emotions[0].Label != "joy" {
		t.Errorf("unexpected emotions %+v", got.Emotions)
	}
	if got.DominantEmotion != "joy" || got.Confidence != 0.9 {
		t.Errorf("unexpected dominant %s %v", got.DominantEmotion, got.Confidence)
	}
	if got.Note != "fallback" || got.Source != "fallback" {
		t.Errorf("expected fallback annotation, got %q %q", got.Note, got.Source)
	}
}

func TestAnalyzeSentimentEmptyLists(t *testing.T) {
	uc := &mockUseCase{sentiment: analysis.AnalyzeSentimentOutput{
		Text:      "ok",
		Sentiment: model.NewSentimentResult(0, nil, nil),
		Source:    model.SourceProvider,
	}}

	w, env := serve(t, uc, http.MethodPost, "/api/analyze-sentiment", `{"text":"ok"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(string(env.Data), `"entities":[]`) || !strings.Contains(string(env.Data), `"topics":[]`) {
		t.Errorf("expected empty lists, got %s", env.Data)
	}
	if strings.Contains(string(env.Data), `"note"`) {
		t.Errorf("provider result must not carry a note: %s", env.Data)
	}

	var got analyzeSentimentResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.SentimentLabel != "neutral" {
		t.Errorf("expected neutral, got %s", got.SentimentLabel)
	}
}

func TestGenerateResponse(t *testing.T) {
	uc := &mockUseCase{reply: analysis.GenerateResponseOutput{
		OriginalText:    "hi",
		Context:         "user: hello",
		DetectedEmotion: "joy",
		AIResponse:      "Great to hear!",
		ResponseStyle:   model.StyleEnthusiastic,
		Source:          model.SourceProvider,
	}}

	w, env := serve(t, uc, http.MethodPost, "/api/generate-response", `{"text":"hi","context":"user: hello","emotion":"joy"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastGenerate.Context != "user: hello" || uc.lastGenerate.Emotion != "joy" {
		t.Errorf("request not bound: %+v", uc.lastGenerate)
	}

	var got generateResponseResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.AIResponse != "Great to hear!" || got.ResponseStyle != "enthusiastic" {
		t.Errorf("unexpected reply %+v", got)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		uc         *mockUseCase
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"Empty Text", &mockUseCase{}, "/api/detect-emotion", `{"text":""}`, http.StatusBadRequest, "Text is required"},
		{"Missing Text", &mockUseCase{}, "/api/analyze-sentiment", `{}`, http.StatusBadRequest, "Text is required"},
		{"Whitespace Text", &mockUseCase{}, "/api/generate-response", `{"text":"   "}`, http.StatusBadRequest, "Text is required"},
		{"Malformed Body", &mockUseCase{}, "/api/detect-emotion", `{"text":`, http.StatusBadRequest, "Bad Request"},
		{"Unknown Error", &mockUseCase{err: errors.New("boom")}, "/api/detect-emotion", `{"text":"hi"}`, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := serve(t, tt.uc, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if env.ErrorCode == 0 {
				t.Error("expected non-zero error code")
			}
			if tt.wantMsg != "" && env.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, env.Message)
			}
		})
	}
}

func TestSchemas(t *testing.T) {
	w, env := serve(t, &mockUseCase{}, http.MethodGet, "/api/v1/schemas", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got schemasResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(got.Contracts) == 0 {
		t.Fatal("expected contracts")
	}
	for _, c := range got.Contracts {
		if c.Provider == "" || c.Schema == nil {
			t.Errorf("incomplete contract %+v", c)
		}
	}
}
