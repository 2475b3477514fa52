package translation

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Translator translates text from one language into another
type Translator interface {
	// Translate returns text rendered in targetLang, trimmed of surrounding whitespace
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Name returns the translator name
	Name() string
}

// Config holds translator configuration
type Config struct {
	Provider string // "google", "openai" or "gemini"
	Timeout  time.Duration

	// Google-specific settings
	GoogleURL  string
	HTTPClient *http.Client

	// OpenAI-specific settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini-specific settings
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "google",
		Timeout:     30 * time.Second,
		GoogleURL:   defaultGoogleURL,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewTranslator creates the translator selected by config.Provider
func NewTranslator(config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "", "google":
		return NewGoogleTranslator(config), nil
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAITranslator(config), nil
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiTranslator(context.Background(), config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
