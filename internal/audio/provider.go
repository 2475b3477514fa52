package audio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/kannadacards/internal"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// Synthesize speaks text in language lang and returns a complete MP3 buffer
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider string        // Provider name: "gtts", "openai" or "espeak"
	Fallback string        // Optional fallback provider name
	Timeout  time.Duration // Per-call timeout
	Logger   *zap.Logger

	// Google TTS settings
	GTTSURL    string
	HTTPClient *http.Client

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIBaseURL     string
	OpenAIModel       string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts model

	// espeak-ng settings
	ESpeak *ESpeakConfig
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:          "gtts",
		Timeout:           30 * time.Second,
		GTTSURL:           defaultGTTSURL,
		OpenAIModel:       "gpt-4o-mini-tts",
		OpenAIVoice:       "alloy",
		OpenAISpeed:       1.0,
		OpenAIInstruction: "Speak the text in the language it is written in with native pronunciation. Speak slowly and clearly for language learners.",
		ESpeak:            DefaultConfig(),
	}
}

// NewProvider creates the appropriate audio provider based on configuration.
// A configured Fallback wraps the primary in a ProviderWithFallback.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	primary, err := newNamedProvider(config.Provider, config)
	if err != nil {
		return nil, err
	}
	if config.Fallback == "" || config.Fallback == config.Provider {
		return primary, nil
	}

	fallback, err := newNamedProvider(config.Fallback, config)
	if err != nil {
		return nil, fmt.Errorf("fallback provider: %w", err)
	}
	return NewProviderWithFallback(primary, fallback, config.Logger), nil
}

func newNamedProvider(name string, config *Config) (Provider, error) {
	switch name {
	case "", "gtts":
		return NewGTTSProvider(config), nil
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)
	case "espeak", "espeak-ng":
		espeakConfig := *DefaultConfig()
		if config.ESpeak != nil {
			espeakConfig = *config.ESpeak
		}
		if espeakConfig.Timeout == 0 {
			espeakConfig.Timeout = config.Timeout
		}
		return NewESpeakProvider(&espeakConfig)
	default:
		return nil, fmt.Errorf("unknown audio provider: %s", name)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Synthesize tries primary provider first, falls back to secondary on error.
// Blank input is rejected without consulting either provider.
func (p *ProviderWithFallback) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	data, err := p.primary.Synthesize(ctx, text, lang)
	if err == nil {
		return data, nil
	}
	if internal.IsEmptyInput(err) {
		return nil, err
	}

	p.logger.Warn("primary audio provider failed, falling back",
		zap.String("primary", p.primary.Name()),
		zap.String("fallback", p.fallback.Name()),
		zap.Error(err))

	return p.fallback.Synthesize(ctx, text, lang)
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
