package phonetic

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/snonux/kannadacards/internal/script"
)

// Transliterator produces a Latin phonetic rendering of text
type Transliterator interface {
	// ToPhonetics romanizes text written in the given script
	ToPhonetics(ctx context.Context, text string, from script.Script) (string, error)

	// Name returns the transliterator name
	Name() string
}

// Config holds phonetic transliterator configuration
type Config struct {
	Provider string // "itrans" or "openai"

	// OpenAI-specific settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // Optional API base URL override
	Timeout       time.Duration

	// Caching
	CacheTTL      time.Duration // Zero disables the cache
	CacheCapacity int
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:      "itrans",
		OpenAIModel:   "gpt-4o-mini",
		Timeout:       30 * time.Second,
		CacheTTL:      time.Hour,
		CacheCapacity: 10000,
	}
}

// NewTransliterator creates the transliterator selected by config.Provider,
// wrapped in a cache when config.CacheTTL is positive.
func NewTransliterator(config *Config) (Transliterator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var t Transliterator
	switch config.Provider {
	case "", "itrans":
		t = NewITRANS()
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		t = NewOpenAITransliterator(config)
	default:
		return nil, fmt.Errorf("unknown phonetic provider: %s", config.Provider)
	}

	if config.CacheTTL > 0 {
		t = NewCached(t, config.CacheTTL, config.CacheCapacity)
	}
	return t, nil
}
