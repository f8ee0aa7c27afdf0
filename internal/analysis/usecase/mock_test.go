package usecase

import (
	"context"

	"emotiai/internal/analysis/upstream"
	"emotiai/internal/model"
)

type mockEmotion struct {
	scores model.EmotionScoreSet
	err    error
	calls  int
}

func (m *mockEmotion) Name() string { return "mock" }

func (m *mockEmotion) DetectEmotion(ctx context.Context, text string) (model.EmotionScoreSet, error) {
	m.calls++
	return m.scores, m.err
}

type mockSentiment struct {
	result model.SentimentResult
	err    error
	calls  int
}

func (m *mockSentiment) Name() string { return "mock" }

func (m *mockSentiment) AnalyzeSentiment(ctx context.Context, text string) (model.SentimentResult, error) {
	m.calls++
	return m.result, m.err
}

type mockResponse struct {
	reply upstream.Reply
	err   error
	calls int
}

func (m *mockResponse) Name() string { return "mock" }

func (m *mockResponse) GenerateResponse(ctx context.Context, req upstream.ResponseRequest) (upstream.Reply, error) {
	m.calls++
	return m.reply, m.err
}

type fixedRand struct{}

func (fixedRand) IntN(n int) int   { return 0 }
func (fixedRand) Float64() float64 { return 0 }

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	warnCount  int
	errorCount int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnCount++
}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errorCount++
}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
