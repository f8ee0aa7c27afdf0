package upstream

import (
	"context"
	"fmt"

	"emotiai/config"
	"emotiai/pkg/googlenl"
	"emotiai/pkg/huggingface"
	"emotiai/pkg/llmprovider"
	"emotiai/pkg/log"
	"emotiai/pkg/textrazor"
)

// New builds one adapter per capability from cfg. An offline provider yields Offline.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (Adapters, error) {
	timeout := cfg.Upstream.Timeout
	var out Adapters

	switch cfg.Emotion.Provider {
	case config.ProviderHuggingFace:
		client, err := huggingface.New(huggingface.Config{
			Token:   cfg.Emotion.Token,
			BaseURL: cfg.Emotion.BaseURL,
			Model:   cfg.Emotion.Model,
			Timeout: timeout,
		})
		if err != nil {
			return Adapters{}, fmt.Errorf("emotion adapter: %w", err)
		}
		out.Emotion = NewHuggingFaceEmotion(client, timeout)
	default:
		out.Emotion = Offline{}
	}

	switch cfg.Sentiment.Provider {
	case config.ProviderTextRazor:
		client, err := textrazor.New(textrazor.Config{
			APIKey:  cfg.Sentiment.TextRazor.APIKey,
			URL:     cfg.Sentiment.TextRazor.URL,
			Timeout: timeout,
		})
		if err != nil {
			return Adapters{}, fmt.Errorf("sentiment adapter: %w", err)
		}
		out.Sentiment = NewTextRazorSentiment(client, timeout)
	case config.ProviderGoogle:
		client, err := googlenl.New(ctx, googlenl.Config{
			APIKey:          cfg.Sentiment.Google.APIKey,
			CredentialsFile: cfg.Sentiment.Google.CredentialsPath,
		})
		if err != nil {
			return Adapters{}, fmt.Errorf("sentiment adapter: %w", err)
		}
		out.Sentiment = NewGoogleSentiment(client, timeout)
	default:
		out.Sentiment = Offline{}
	}

	switch cfg.Chat.Provider {
	case config.ProviderOpenRouter, config.ProviderDeepSeek, config.ProviderGemini:
		provider, err := llmprovider.NewProvider(cfg.Chat, timeout)
		if err != nil {
			return Adapters{}, fmt.Errorf("response adapter: %w", err)
		}
		manager := llmprovider.NewManager(provider, &llmprovider.Config{Timeout: timeout}, l)
		out.Response = NewChatResponse(manager, cfg.Chat.MaxTokens)
	default:
		out.Response = Offline{}
	}

	l.Infof(ctx, "Upstream adapters: emotion=%s sentiment=%s response=%s",
		out.Emotion.Name(), out.Sentiment.Name(), out.Response.Name())
	return out, nil
}
