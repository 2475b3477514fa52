package audio

import (
	"context"
	"time"

	"codeberg.org/snonux/kannadacards/internal"
)

// ESpeakProvider implements Provider interface for espeak-ng
type ESpeakProvider struct {
	espeak  *ESpeak
	timeout time.Duration
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *ESpeakConfig) (Provider, error) {
	espeak, err := New(config)
	if err != nil {
		return nil, err
	}

	return &ESpeakProvider{
		espeak:  espeak,
		timeout: timeoutOrDefault(espeak.config.Timeout),
	}, nil
}

// Synthesize generates MP3 audio using espeak-ng and ffmpeg
func (p *ESpeakProvider) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	voice := p.espeak.config.Voice
	if voice == "" {
		voice = lang
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	data, err := p.espeak.GenerateMP3(ctx, text, voice)
	if err != nil {
		return nil, internal.NewProviderError(p.Name(), "synthesize", err)
	}
	return checkAudio(p.Name(), data)
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}
