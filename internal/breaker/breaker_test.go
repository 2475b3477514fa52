package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/kannadacards/internal"
	"codeberg.org/snonux/kannadacards/internal/script"
)

type flakyTranslator struct {
	calls int
	err   error
}

func (f *flakyTranslator) Name() string { return "flaky" }

func (f *flakyTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "ಹಲೋ", nil
}

type stubConverter struct{ calls int }

func (s *stubConverter) Name() string { return "stub" }

func (s *stubConverter) Convert(ctx context.Context, text string, from, to script.Script) (string, error) {
	s.calls++
	return "", internal.NewProviderError("stub", "convert", errors.New("down"))
}

func TestTranslatorPassesThrough(t *testing.T) {
	next := &flakyTranslator{}
	b := WrapTranslator(next, DefaultConfig())

	got, err := b.Translate(context.Background(), "ਹੈਲੋ", "pa", "kn")
	require.NoError(t, err)
	assert.Equal(t, "ಹಲೋ", got)
	assert.Equal(t, "flaky", b.Name())
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestTranslatorOpensAfterFailures(t *testing.T) {
	next := &flakyTranslator{err: errors.New("unavailable")}
	b := WrapTranslator(next, &Config{MaxFailures: 2, OpenTimeout: time.Minute})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := b.Translate(ctx, "ਹੈਲੋ", "pa", "kn")
		assert.EqualError(t, err, "unavailable")
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.Translate(ctx, "ਹੈਲੋ", "pa", "kn")
	var perr *internal.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, "flaky", perr.Provider)
	assert.Equal(t, 2, next.calls, "open breaker must not call the provider")
}

func TestEmptyInputDoesNotTrip(t *testing.T) {
	next := &flakyTranslator{err: &internal.EmptyInputError{Field: "text"}}
	b := WrapTranslator(next, &Config{MaxFailures: 1, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := b.Translate(context.Background(), "", "pa", "kn")
		assert.True(t, internal.IsEmptyInput(err))
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
	assert.Equal(t, 3, next.calls)
}

func TestBreakerHalfOpenRecovers(t *testing.T) {
	next := &flakyTranslator{err: errors.New("unavailable")}
	b := WrapTranslator(next, &Config{MaxFailures: 1, OpenTimeout: 10 * time.Millisecond})

	ctx := context.Background()
	_, _ = b.Translate(ctx, "ਹੈਲੋ", "pa", "kn")
	require.Equal(t, gobreaker.StateOpen, b.State())

	time.Sleep(20 * time.Millisecond)
	next.err = nil
	got, err := b.Translate(ctx, "ਹੈਲੋ", "pa", "kn")
	require.NoError(t, err)
	assert.Equal(t, "ಹಲೋ", got)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestConverterKeepsProviderErrors(t *testing.T) {
	next := &stubConverter{}
	b := WrapConverter(next, &Config{MaxFailures: 1, OpenTimeout: time.Minute})

	_, err := b.Convert(context.Background(), "ಹಲೋ", script.Kannada, script.Gurmukhi)
	assert.True(t, internal.IsProviderError(err))
	assert.NotErrorIs(t, err, gobreaker.ErrOpenState)

	_, err = b.Convert(context.Background(), "ಹಲೋ", script.Kannada, script.Gurmukhi)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 1, next.calls)
}
