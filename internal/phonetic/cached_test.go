package phonetic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/kannadacards/internal/script"
)

type countingTransliterator struct {
	calls int
	err   error
}

func (c *countingTransliterator) Name() string { return "counting" }

func (c *countingTransliterator) ToPhonetics(ctx context.Context, text string, from script.Script) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return "ph:" + text, nil
}

func TestCachedReusesResults(t *testing.T) {
	next := &countingTransliterator{}
	cached := NewCached(next, time.Minute, 10)
	defer cached.Close()

	ctx := context.Background()
	first, err := cached.ToPhonetics(ctx, "ಹಲೋ", script.Kannada)
	require.NoError(t, err)
	second, err := cached.ToPhonetics(ctx, "ಹಲೋ", script.Kannada)
	require.NoError(t, err)

	assert.Equal(t, "ph:ಹಲೋ", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, cached.Len())
	assert.Equal(t, "counting", cached.Name())
}

func TestCachedKeysIncludeScript(t *testing.T) {
	next := &countingTransliterator{}
	cached := NewCached(next, time.Minute, 10)
	defer cached.Close()

	ctx := context.Background()
	_, _ = cached.ToPhonetics(ctx, "abc", script.Kannada)
	_, _ = cached.ToPhonetics(ctx, "abc", script.Gurmukhi)

	assert.Equal(t, 2, next.calls)
}

func TestCachedDoesNotStoreErrors(t *testing.T) {
	next := &countingTransliterator{err: errors.New("down")}
	cached := NewCached(next, time.Minute, 10)
	defer cached.Close()

	ctx := context.Background()
	_, err := cached.ToPhonetics(ctx, "ಹಲೋ", script.Kannada)
	assert.Error(t, err)
	_, err = cached.ToPhonetics(ctx, "ಹಲೋ", script.Kannada)
	assert.Error(t, err)

	assert.Equal(t, 2, next.calls)
	assert.Equal(t, 0, cached.Len())
}

func TestCachedExpires(t *testing.T) {
	next := &countingTransliterator{}
	cached := NewCached(next, 20*time.Millisecond, 10)
	defer cached.Close()

	ctx := context.Background()
	_, _ = cached.ToPhonetics(ctx, "ಹಲೋ", script.Kannada)
	time.Sleep(50 * time.Millisecond)
	_, _ = cached.ToPhonetics(ctx, "ಹಲೋ", script.Kannada)

	assert.Equal(t, 2, next.calls)
}
