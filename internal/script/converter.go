package script

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Converter renders text written in one script using the letters of another
type Converter interface {
	// Convert converts text from one script to another. Blank text is
	// returned unchanged without error.
	Convert(ctx context.Context, text string, from, to Script) (string, error)

	// Name returns the converter name
	Name() string
}

// Config holds script converter configuration
type Config struct {
	Provider        string // "unicode" or "aksharamukha"
	AksharamukhaURL string // Base URL of the Aksharamukha API
	Timeout         time.Duration
	HTTPClient      *http.Client // Optional, mainly for tests
}

// DefaultConfig returns the default converter configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:        "unicode",
		AksharamukhaURL: "https://aksharamukha-plugin.appspot.com",
		Timeout:         30 * time.Second,
	}
}

// NewConverter creates the converter selected by config.Provider
func NewConverter(config *Config) (Converter, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "", "unicode":
		return NewBlockConverter(), nil
	case "aksharamukha":
		return NewAksharamukha(config), nil
	default:
		return nil, fmt.Errorf("unknown script provider: %s", config.Provider)
	}
}
