package processor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/kannadacards/internal/batch"
)

// Options configures a Processor
type Options struct {
	Languages   Languages
	Workers     int           // Concurrent word cards, 1 builds them sequentially
	CallTimeout time.Duration // Deadline of every provider call
}

// DefaultOptions returns the default processor options
func DefaultOptions() *Options {
	return &Options{
		Languages:   DefaultLanguages(),
		Workers:     1,
		CallTimeout: DefaultCallTimeout,
	}
}

// Processor builds complete lessons from source text
type Processor struct {
	sentence  *SentencePipeline
	words     *WordAlignmentPipeline
	languages Languages
	logger    *zap.Logger
}

// NewProcessor creates a new lesson processor
func NewProcessor(providers *Providers, opts *Options, logger *zap.Logger) *Processor {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Processor{
		sentence:  NewSentencePipeline(providers, opts.CallTimeout, logger),
		words:     NewWordAlignmentPipeline(providers, opts.CallTimeout, opts.Workers, logger),
		languages: opts.Languages,
		logger:    logger,
	}
}

// Languages returns the language pair the processor works on
func (p *Processor) Languages() Languages {
	return p.languages
}

// Process builds the sentence result for text and word cards aligned
// against its translation.
func (p *Processor) Process(ctx context.Context, text string) (*Lesson, error) {
	sentence, err := p.sentence.BuildSentenceResult(ctx, text, p.languages)
	if err != nil {
		return nil, err
	}
	return p.withCards(ctx, sentence), nil
}

// ProcessWithTranslation builds a lesson for text whose translation is known
func (p *Processor) ProcessWithTranslation(ctx context.Context, text, translated string) (*Lesson, error) {
	sentence, err := p.sentence.BuildFromTranslation(ctx, text, translated, p.languages)
	if err != nil {
		return nil, err
	}
	return p.withCards(ctx, sentence), nil
}

func (p *Processor) withCards(ctx context.Context, sentence *TranslationResult) *Lesson {
	cards := p.words.BuildWordCards(ctx, sentence.SourceText, sentence.TranslatedText, p.languages)
	lesson := &Lesson{Sentence: sentence, Cards: cards}

	p.logger.Info("lesson built",
		zap.String("source", sentence.SourceText),
		zap.String("translated", sentence.TranslatedText),
		zap.Int("cards", len(cards)),
		zap.Int("failed_cards", lesson.FailedCards()))
	return lesson
}

// BatchSummary counts the outcome of a batch run
type BatchSummary struct {
	Total     int
	Processed int
	Failed    int
}

// LessonHandler receives every lesson built during a batch run
type LessonHandler func(entry batch.Entry, lesson *Lesson) error

// ProcessBatch builds a lesson for each sentence of a batch file and passes
// it to handle. Failed sentences are logged and skipped.
func (p *Processor) ProcessBatch(ctx context.Context, path string, handle LessonHandler) (*BatchSummary, error) {
	entries, err := batch.ReadBatchFile(path)
	if err != nil {
		return nil, err
	}

	summary := &BatchSummary{Total: len(entries)}
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("batch interrupted: %w", err)
		}

		p.logger.Info("processing batch entry",
			zap.Int("entry", i+1),
			zap.Int("total", len(entries)),
			zap.String("source", entry.Source))

		var lesson *Lesson
		if entry.Translation != "" {
			lesson, err = p.ProcessWithTranslation(ctx, entry.Source, entry.Translation)
		} else {
			lesson, err = p.Process(ctx, entry.Source)
		}
		if err == nil && handle != nil {
			err = handle(entry, lesson)
		}
		if err != nil {
			p.logger.Error("batch entry failed",
				zap.Int("line", entry.Line),
				zap.String("source", entry.Source),
				zap.Error(err))
			summary.Failed++
			continue
		}
		summary.Processed++
	}

	p.logger.Info("batch finished",
		zap.Int("total", summary.Total),
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed))
	return summary, nil
}
