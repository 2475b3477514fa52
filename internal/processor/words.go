package processor

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WordAlignmentPipeline builds one flashcard per positionally aligned word
type WordAlignmentPipeline struct {
	providers *Providers
	timeout   time.Duration
	workers   int
	logger    *zap.Logger
}

// NewWordAlignmentPipeline creates a word pipeline. Workers below 2 build
// cards sequentially.
func NewWordAlignmentPipeline(providers *Providers, timeout time.Duration, workers int, logger *zap.Logger) *WordAlignmentPipeline {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WordAlignmentPipeline{providers: providers, timeout: timeout, workers: workers, logger: logger}
}

// BuildWordCards aligns the tokens of sourceText and translatedText and
// builds a card for each pair, ordered by Index. A provider failure marks
// only that card as failed. The result is never nil.
func (w *WordAlignmentPipeline) BuildWordCards(ctx context.Context, sourceText, translatedText string, langs Languages) []WordCard {
	pairs := Align(sourceText, translatedText)
	cards := make([]WordCard, len(pairs))
	if len(pairs) == 0 {
		return cards
	}

	if w.workers == 1 || len(pairs) == 1 {
		for i, pair := range pairs {
			cards[i] = w.buildCard(ctx, pair, langs)
		}
	} else {
		w.buildConcurrently(ctx, pairs, cards, langs)
	}

	for _, c := range cards {
		if c.Failed() {
			w.logger.Warn("word card failed",
				zap.Int("index", c.Index),
				zap.String("word", c.TranslatedWord),
				zap.Error(c.Err))
		}
	}
	return cards
}

// buildConcurrently fills cards[i] for pairs[i] on a worker pool. Jobs
// that never ran because ctx ended leave failed cards behind.
func (w *WordAlignmentPipeline) buildConcurrently(ctx context.Context, pairs []AlignedPair, cards []WordCard, langs Languages) {
	pool := newWorkerPool(min(w.workers, len(pairs)), len(pairs))
	pool.Start(ctx)

	for i, pair := range pairs {
		if err := pool.Submit(func(ctx context.Context) {
			cards[i] = w.buildCard(ctx, pair, langs)
		}); err != nil {
			cards[i] = failedCard(pair, err)
		}
	}
	pool.Close()

	for i, pair := range pairs {
		if cards[i].Index == 0 {
			err := ctx.Err()
			if err == nil {
				err = ErrPoolClosed
			}
			cards[i] = failedCard(pair, err)
		}
	}
}

func (w *WordAlignmentPipeline) buildCard(ctx context.Context, pair AlignedPair, langs Languages) WordCard {
	stages, err := runStages(ctx, w.timeout, w.providers, pair.TranslatedWord, langs)
	if err != nil {
		return failedCard(pair, err)
	}

	return WordCard{
		Index:                        pair.Index,
		SourceWord:                   pair.SourceWord,
		TranslatedWord:               pair.TranslatedWord,
		TranslatedWordInSourceScript: stages.inSourceScript,
		Phonetics:                    stages.phonetics,
		Audio:                        stages.audio,
	}
}

func failedCard(pair AlignedPair, err error) WordCard {
	return WordCard{
		Index:          pair.Index,
		SourceWord:     pair.SourceWord,
		TranslatedWord: pair.TranslatedWord,
		Err:            err,
	}
}
