package processor

import (
	"fmt"

	"codeberg.org/snonux/kannadacards/internal/audio"
	"codeberg.org/snonux/kannadacards/internal/breaker"
	"codeberg.org/snonux/kannadacards/internal/phonetic"
	"codeberg.org/snonux/kannadacards/internal/script"
	"codeberg.org/snonux/kannadacards/internal/translation"
)

// Providers are the four services a lesson is built from
type Providers struct {
	Translator     translation.Translator
	Converter      script.Converter
	Transliterator phonetic.Transliterator
	Synthesizer    audio.Provider

	closers []func()
}

// Close releases resources held by the providers
func (p *Providers) Close() {
	for _, c := range p.closers {
		c()
	}
	p.closers = nil
}

// ProviderConfig selects and configures every provider
type ProviderConfig struct {
	Translation *translation.Config
	Script      *script.Config
	Phonetic    *phonetic.Config
	Audio       *audio.Config
	Breaker     *breaker.Config // Nil disables circuit breakers
}

// DefaultProviderConfig returns the default provider configuration
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		Translation: translation.DefaultConfig(),
		Script:      script.DefaultConfig(),
		Phonetic:    phonetic.DefaultConfig(),
		Audio:       audio.DefaultProviderConfig(),
		Breaker:     breaker.DefaultConfig(),
	}
}

// NewProviders creates all providers described by config
func NewProviders(config *ProviderConfig) (*Providers, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	translator, err := translation.NewTranslator(config.Translation)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	converter, err := script.NewConverter(config.Script)
	if err != nil {
		return nil, fmt.Errorf("failed to create script converter: %w", err)
	}

	transliterator, err := phonetic.NewTransliterator(config.Phonetic)
	if err != nil {
		return nil, fmt.Errorf("failed to create phonetic transliterator: %w", err)
	}

	synthesizer, err := audio.NewProvider(config.Audio)
	if err != nil {
		if c, ok := transliterator.(*phonetic.Cached); ok {
			c.Close()
		}
		return nil, fmt.Errorf("failed to create audio provider: %w", err)
	}

	p := &Providers{
		Translator:     translator,
		Converter:      converter,
		Transliterator: transliterator,
		Synthesizer:    synthesizer,
	}
	if c, ok := transliterator.(*phonetic.Cached); ok {
		p.closers = append(p.closers, c.Close)
	}

	if config.Breaker != nil {
		p.Translator = breaker.WrapTranslator(p.Translator, config.Breaker)
		p.Converter = breaker.WrapConverter(p.Converter, config.Breaker)
		p.Transliterator = breaker.WrapTransliterator(p.Transliterator, config.Breaker)
		p.Synthesizer = breaker.WrapSynthesizer(p.Synthesizer, config.Breaker)
	}

	return p, nil
}
