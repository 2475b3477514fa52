package phonetic

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"codeberg.org/snonux/kannadacards/internal/script"
)

// Cached memoizes successful romanizations of another Transliterator.
// Errors are never cached.
type Cached struct {
	next  Transliterator
	cache *ttlcache.Cache[string, string]
}

// NewCached wraps next with a TTL cache holding at most capacity entries
func NewCached(next Transliterator, ttl time.Duration, capacity int) *Cached {
	opts := []ttlcache.Option[string, string]{ttlcache.WithTTL[string, string](ttl)}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, string](uint64(capacity)))
	}
	cache := ttlcache.New(opts...)
	go cache.Start()

	return &Cached{next: next, cache: cache}
}

// Name returns the wrapped transliterator name
func (c *Cached) Name() string {
	return c.next.Name()
}

// ToPhonetics returns a cached romanization or delegates to the wrapped transliterator
func (c *Cached) ToPhonetics(ctx context.Context, text string, from script.Script) (string, error) {
	key := string(from) + "\x00" + text
	if item := c.cache.Get(key); item != nil {
		return item.Value(), nil
	}

	phonetics, err := c.next.ToPhonetics(ctx, text, from)
	if err != nil {
		return "", err
	}
	c.cache.Set(key, phonetics, ttlcache.DefaultTTL)
	return phonetics, nil
}

// Len returns the number of cached entries
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Close stops the cache cleanup loop
func (c *Cached) Close() {
	c.cache.Stop()
}
