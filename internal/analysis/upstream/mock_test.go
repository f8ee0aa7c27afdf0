package upstream

import (
	"context"

	"emotiai/pkg/googlenl"
	"emotiai/pkg/huggingface"
	"emotiai/pkg/llmprovider"
	"emotiai/pkg/textrazor"
)

type mockClassifier struct {
	classes []huggingface.Classification
	err     error
	calls   int
}

func (m *mockClassifier) Classify(ctx context.Context, text string) ([]huggingface.Classification, error) {
	m.calls++
	return m.classes, m.err
}

type mockAnalyzer struct {
	resp  *textrazor.AnalyzeResponse
	err   error
	calls int
}

func (m *mockAnalyzer) Analyze(ctx context.Context, text string) (*textrazor.AnalyzeResponse, error) {
	m.calls++
	return m.resp, m.err
}

type mockAnnotator struct {
	ann   *googlenl.Annotation
	err   error
	calls int
}

func (m *mockAnnotator) Annotate(ctx context.Context, text string) (*googlenl.Annotation, error) {
	m.calls++
	return m.ann, m.err
}

type mockGenerator struct {
	resp    *llmprovider.Response
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockGenerator) Name() string { return "openrouter" }

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
