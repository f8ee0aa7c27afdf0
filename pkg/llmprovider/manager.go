package llmprovider

import (
	"context"
	"strings"
	"time"

	"emotiai/pkg/log"
)

// Manager runs one bounded generation call against a single provider.
// It never retries: a failed call is returned to the caller as a *ProviderError.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Name returns the name of the managed provider.
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// GenerateContent calls the provider once within the configured timeout.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProviderConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	resp, err := m.provider.GenerateContent(ctx, req)
	if err != nil {
		m.logFailure(ctx, err)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: err}
	}
	if strings.TrimSpace(resp.Content) == "" {
		m.logFailure(ctx, ErrEmptyCompletion)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: ErrEmptyCompletion}
	}

	m.logSuccess(ctx, resp)
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"error", err.Error(),
	)
}
