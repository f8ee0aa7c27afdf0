package llmprovider

import (
	"fmt"
	"time"

	"emotiai/config"
	"emotiai/pkg/deepseek"
	"emotiai/pkg/gemini"
	"emotiai/pkg/openrouter"
)

// NewProvider creates the Provider named by cfg.Provider.
func NewProvider(cfg config.ChatConfig, timeout time.Duration) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderOpenRouter:
		client, err := openrouter.New(openrouter.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Referer: cfg.Referer,
			Title:   cfg.Title,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openrouter client: %w", err)
		}
		return NewOpenRouterAdapter(client), nil

	case config.ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case config.ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			APIURL:  cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
