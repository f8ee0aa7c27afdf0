package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider names accepted by the emotion, sentiment and chat sections.
const (
	ProviderOffline     = "offline"
	ProviderHuggingFace = "huggingface"
	ProviderTextRazor   = "textrazor"
	ProviderGoogle      = "google"
	ProviderOpenRouter  = "openrouter"
	ProviderDeepSeek    = "deepseek"
	ProviderGemini      = "gemini"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream providers
	Upstream  UpstreamConfig
	Emotion   EmotionConfig
	Sentiment SentimentConfig
	Chat      ChatConfig

	// Local estimators
	Fallback FallbackConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port      int
	Mode      string
	StaticDir string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// UpstreamConfig bounds every outbound provider call.
type UpstreamConfig struct {
	Timeout time.Duration
}

type EmotionConfig struct {
	Provider string
	BaseURL  string
	Model    string
	Token    string
}

type SentimentConfig struct {
	Provider  string
	TextRazor TextRazorConfig
	Google    GoogleNLConfig
}

type TextRazorConfig struct {
	URL    string
	APIKey string
}

// GoogleNLConfig authenticates with either an API key or a service-account JSON file.
type GoogleNLConfig struct {
	APIKey          string
	CredentialsPath string
}

// ChatConfig holds configuration for the response-generation provider
type ChatConfig struct {
	Provider  string
	BaseURL   string
	Model     string
	APIKey    string
	MaxTokens int
	Referer   string
	Title     string
}

type FallbackConfig struct {
	// Seed makes the randomness source reproducible; 0 seeds from the runtime.
	Seed int64
	// LegacyRandomBaseline draws the emotion baseline from [0.1, 0.4) instead of a fixed 0.2.
	LegacyRandomBaseline bool
}

type RateLimitConfig struct {
	// PerMin is the per-client request budget; 0 disables limiting.
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file; an empty path falls back to the search paths.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.StaticDir = v.GetString("http_server.static_dir")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Upstream.Timeout = v.GetDuration("upstream.timeout")

	// Emotion
	cfg.Emotion.Provider = strings.ToLower(v.GetString("emotion.provider"))
	cfg.Emotion.BaseURL = v.GetString("emotion.base_url")
	cfg.Emotion.Model = v.GetString("emotion.model")
	cfg.Emotion.Token = expandEnvVar(v, v.GetString("emotion.token"))
	if token := v.GetString("hugging_face_token"); token != "" {
		cfg.Emotion.Token = token
	}

	// Sentiment
	cfg.Sentiment.Provider = strings.ToLower(v.GetString("sentiment.provider"))
	cfg.Sentiment.TextRazor.URL = v.GetString("sentiment.textrazor.url")
	cfg.Sentiment.TextRazor.APIKey = expandEnvVar(v, v.GetString("sentiment.textrazor.api_key"))
	if key := v.GetString("text_razor_key"); key != "" {
		cfg.Sentiment.TextRazor.APIKey = key
	}
	cfg.Sentiment.Google.APIKey = expandEnvVar(v, v.GetString("sentiment.google.api_key"))
	cfg.Sentiment.Google.CredentialsPath = v.GetString("sentiment.google.credentials_path")
	if creds := v.GetString("google_application_credentials"); creds != "" && cfg.Sentiment.Google.CredentialsPath == "" {
		cfg.Sentiment.Google.CredentialsPath = creds
	}

	// Chat
	cfg.Chat.Provider = strings.ToLower(v.GetString("chat.provider"))
	cfg.Chat.BaseURL = v.GetString("chat.base_url")
	cfg.Chat.Model = v.GetString("chat.model")
	cfg.Chat.APIKey = expandEnvVar(v, v.GetString("chat.api_key"))
	if key := v.GetString("open_router_key"); key != "" {
		cfg.Chat.APIKey = key
	}
	cfg.Chat.MaxTokens = v.GetInt("chat.max_tokens")
	cfg.Chat.Referer = v.GetString("chat.referer")
	cfg.Chat.Title = v.GetString("chat.title")

	cfg.Fallback.Seed = v.GetInt64("fallback.seed")
	cfg.Fallback.LegacyRandomBaseline = v.GetBool("fallback.legacy_random_baseline")

	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown provider names and missing credentials for any provider that is not offline.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("%w: http_server.port must be positive", ErrInvalidConfig)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("%w: upstream.timeout must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.PerMin < 0 {
		return fmt.Errorf("%w: rate_limit.per_min must not be negative", ErrInvalidConfig)
	}

	switch c.Emotion.Provider {
	case ProviderOffline:
	case ProviderHuggingFace:
		if c.Emotion.Token == "" {
			return fmt.Errorf("%w: emotion.token is required for provider %s", ErrInvalidConfig, c.Emotion.Provider)
		}
	default:
		return fmt.Errorf("%w: unknown emotion.provider %q", ErrInvalidConfig, c.Emotion.Provider)
	}

	switch c.Sentiment.Provider {
	case ProviderOffline:
	case ProviderTextRazor:
		if c.Sentiment.TextRazor.APIKey == "" {
			return fmt.Errorf("%w: sentiment.textrazor.api_key is required", ErrInvalidConfig)
		}
	case ProviderGoogle:
		if c.Sentiment.Google.APIKey == "" && c.Sentiment.Google.CredentialsPath == "" {
			return fmt.Errorf("%w: sentiment.google needs api_key or credentials_path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown sentiment.provider %q", ErrInvalidConfig, c.Sentiment.Provider)
	}

	switch c.Chat.Provider {
	case ProviderOffline:
	case ProviderOpenRouter, ProviderDeepSeek, ProviderGemini:
		if c.Chat.APIKey == "" {
			return fmt.Errorf("%w: chat.api_key is required for provider %s", ErrInvalidConfig, c.Chat.Provider)
		}
		if c.Chat.MaxTokens <= 0 {
			return fmt.Errorf("%w: chat.max_tokens must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown chat.provider %q", ErrInvalidConfig, c.Chat.Provider)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("upstream.timeout", "30s")

	v.SetDefault("emotion.provider", ProviderHuggingFace)
	v.SetDefault("sentiment.provider", ProviderTextRazor)
	v.SetDefault("chat.provider", ProviderOpenRouter)
	v.SetDefault("chat.max_tokens", 150)

	v.SetDefault("fallback.seed", 0)
	v.SetDefault("fallback.legacy_random_baseline", false)

	v.SetDefault("rate_limit.per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
