// Package breaker guards provider calls with circuit breakers. A tripped
// breaker fails calls fast with a ProviderError. Calls are never retried.
package breaker

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/kannadacards/internal"
	"codeberg.org/snonux/kannadacards/internal/audio"
	"codeberg.org/snonux/kannadacards/internal/phonetic"
	"codeberg.org/snonux/kannadacards/internal/script"
	"codeberg.org/snonux/kannadacards/internal/translation"
)

// Config holds circuit breaker settings shared by all wrapped providers
type Config struct {
	MaxFailures uint32        // Consecutive failures that open the breaker
	OpenTimeout time.Duration // Time the breaker stays open before probing
	Logger      *zap.Logger
}

// DefaultConfig returns the default breaker configuration
func DefaultConfig() *Config {
	return &Config{
		MaxFailures: 5,
		OpenTimeout: 30 * time.Second,
	}
}

func newBreaker(name string, config *Config) *gobreaker.CircuitBreaker {
	if config == nil {
		config = DefaultConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxFailures := config.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Rejected input says nothing about the health of the provider
		IsSuccessful: func(err error) bool {
			return err == nil || internal.IsEmptyInput(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

func execute[T any](cb *gobreaker.CircuitBreaker, provider, op string, fn func() (T, error)) (T, error) {
	var zero T
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, internal.NewProviderError(provider, op, err)
	}
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

// Translator guards a translation.Translator
type Translator struct {
	next translation.Translator
	cb   *gobreaker.CircuitBreaker
}

// WrapTranslator wraps t with a circuit breaker
func WrapTranslator(t translation.Translator, config *Config) *Translator {
	return &Translator{next: t, cb: newBreaker("translation/"+t.Name(), config)}
}

// Name returns the wrapped translator name
func (b *Translator) Name() string { return b.next.Name() }

// Translate delegates to the wrapped translator unless the breaker is open
func (b *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return execute(b.cb, b.next.Name(), "translate", func() (string, error) {
		return b.next.Translate(ctx, text, sourceLang, targetLang)
	})
}

// State reports the breaker state
func (b *Translator) State() gobreaker.State { return b.cb.State() }

// Converter guards a script.Converter
type Converter struct {
	next script.Converter
	cb   *gobreaker.CircuitBreaker
}

// WrapConverter wraps c with a circuit breaker
func WrapConverter(c script.Converter, config *Config) *Converter {
	return &Converter{next: c, cb: newBreaker("script/"+c.Name(), config)}
}

// Name returns the wrapped converter name
func (b *Converter) Name() string { return b.next.Name() }

// Convert delegates to the wrapped converter unless the breaker is open
func (b *Converter) Convert(ctx context.Context, text string, from, to script.Script) (string, error) {
	return execute(b.cb, b.next.Name(), "convert", func() (string, error) {
		return b.next.Convert(ctx, text, from, to)
	})
}

// Transliterator guards a phonetic.Transliterator
type Transliterator struct {
	next phonetic.Transliterator
	cb   *gobreaker.CircuitBreaker
}

// WrapTransliterator wraps t with a circuit breaker
func WrapTransliterator(t phonetic.Transliterator, config *Config) *Transliterator {
	return &Transliterator{next: t, cb: newBreaker("phonetic/"+t.Name(), config)}
}

// Name returns the wrapped transliterator name
func (b *Transliterator) Name() string { return b.next.Name() }

// ToPhonetics delegates to the wrapped transliterator unless the breaker is open
func (b *Transliterator) ToPhonetics(ctx context.Context, text string, from script.Script) (string, error) {
	return execute(b.cb, b.next.Name(), "romanize", func() (string, error) {
		return b.next.ToPhonetics(ctx, text, from)
	})
}

// Synthesizer guards an audio.Provider
type Synthesizer struct {
	next audio.Provider
	cb   *gobreaker.CircuitBreaker
}

// WrapSynthesizer wraps p with a circuit breaker
func WrapSynthesizer(p audio.Provider, config *Config) *Synthesizer {
	return &Synthesizer{next: p, cb: newBreaker("audio/"+p.Name(), config)}
}

// Name returns the wrapped provider name
func (b *Synthesizer) Name() string { return b.next.Name() }

// IsAvailable reports the wrapped provider availability
func (b *Synthesizer) IsAvailable() error { return b.next.IsAvailable() }

// Synthesize delegates to the wrapped provider unless the breaker is open
func (b *Synthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	return execute(b.cb, b.next.Name(), "synthesize", func() ([]byte, error) {
		return b.next.Synthesize(ctx, text, lang)
	})
}
