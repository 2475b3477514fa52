package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/kannadacards/internal"
)

// DefaultCallTimeout bounds every single provider call
const DefaultCallTimeout = 30 * time.Second

var errEmptyResult = errors.New("provider returned an empty result")

// SentencePipeline builds the sentence level result
type SentencePipeline struct {
	providers *Providers
	timeout   time.Duration
	logger    *zap.Logger
}

// NewSentencePipeline creates a sentence pipeline. A non-positive timeout
// selects DefaultCallTimeout.
func NewSentencePipeline(providers *Providers, timeout time.Duration, logger *zap.Logger) *SentencePipeline {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SentencePipeline{providers: providers, timeout: timeout, logger: logger}
}

// BuildSentenceResult translates sourceText, rewrites the translation in the
// source script, romanizes it and synthesizes it. The first failing stage
// aborts the run and its error is returned; there is no partial result.
func (s *SentencePipeline) BuildSentenceResult(ctx context.Context, sourceText string, langs Languages) (*TranslationResult, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, &internal.EmptyInputError{Field: "source text"}
	}

	p := s.providers
	translated, err := callWithTimeout(ctx, s.timeout, p.Translator.Name(), "translate", func(ctx context.Context) (string, error) {
		return p.Translator.Translate(ctx, sourceText, langs.SourceLang, langs.TargetLang)
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(translated) == "" {
		return nil, internal.NewProviderError(p.Translator.Name(), "translate", errEmptyResult)
	}
	s.logger.Debug("translated sentence", zap.String("source", sourceText), zap.String("translated", translated))

	return s.BuildFromTranslation(ctx, sourceText, translated, langs)
}

// BuildFromTranslation builds the sentence result for a translation that is
// already known, skipping the translator.
func (s *SentencePipeline) BuildFromTranslation(ctx context.Context, sourceText, translated string, langs Languages) (*TranslationResult, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, &internal.EmptyInputError{Field: "source text"}
	}
	if strings.TrimSpace(translated) == "" {
		return nil, &internal.EmptyInputError{Field: "translated text"}
	}

	stages, err := runStages(ctx, s.timeout, s.providers, translated, langs)
	if err != nil {
		return nil, err
	}

	return &TranslationResult{
		SourceText:               sourceText,
		TranslatedText:           translated,
		TranslatedInSourceScript: stages.inSourceScript,
		Phonetics:                stages.phonetics,
		Audio:                    stages.audio,
	}, nil
}

// stageResult holds the outputs derived from one piece of translated text
type stageResult struct {
	inSourceScript string
	phonetics      string
	audio          []byte
}

// runStages converts, romanizes and synthesizes translated text in order,
// stopping at the first error.
func runStages(ctx context.Context, timeout time.Duration, p *Providers, translated string, langs Languages) (stageResult, error) {
	var r stageResult
	var err error

	r.inSourceScript, err = callWithTimeout(ctx, timeout, p.Converter.Name(), "convert", func(ctx context.Context) (string, error) {
		return p.Converter.Convert(ctx, translated, langs.TargetScript, langs.SourceScript)
	})
	if err != nil {
		return stageResult{}, err
	}
	if strings.TrimSpace(r.inSourceScript) == "" {
		return stageResult{}, internal.NewProviderError(p.Converter.Name(), "convert", errEmptyResult)
	}

	r.phonetics, err = callWithTimeout(ctx, timeout, p.Transliterator.Name(), "romanize", func(ctx context.Context) (string, error) {
		return p.Transliterator.ToPhonetics(ctx, translated, langs.TargetScript)
	})
	if err != nil {
		return stageResult{}, err
	}
	if strings.TrimSpace(r.phonetics) == "" {
		return stageResult{}, internal.NewProviderError(p.Transliterator.Name(), "romanize", errEmptyResult)
	}

	r.audio, err = callWithTimeout(ctx, timeout, p.Synthesizer.Name(), "synthesize", func(ctx context.Context) ([]byte, error) {
		return p.Synthesizer.Synthesize(ctx, translated, langs.TargetLang)
	})
	if err != nil {
		return stageResult{}, err
	}
	if len(r.audio) == 0 {
		return stageResult{}, internal.NewProviderError(p.Synthesizer.Name(), "synthesize", errEmptyResult)
	}

	return r, nil
}

// callWithTimeout runs one provider call under its own deadline. Untyped
// errors are wrapped in a ProviderError; typed errors pass through unchanged.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, provider, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := fn(callCtx)
	if err != nil {
		var zero T
		return zero, internal.NewProviderError(provider, op, err)
	}
	return res, nil
}
