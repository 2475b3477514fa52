package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"codeberg.org/snonux/kannadacards/internal"
)

const (
	defaultGTTSURL = "https://translate.google.com/translate_tts"

	// maxChunkRunes is the longest text the TTS endpoint accepts per request
	maxChunkRunes = 100
)

// gttsLanguages lists the language codes the Google TTS endpoint speaks
var gttsLanguages = map[string]bool{
	"af": true, "ar": true, "bg": true, "bn": true, "bs": true, "ca": true, "cs": true,
	"da": true, "de": true, "el": true, "en": true, "es": true, "et": true, "fi": true,
	"fr": true, "gu": true, "hi": true, "hr": true, "hu": true, "id": true, "is": true,
	"it": true, "iw": true, "ja": true, "jw": true, "km": true, "kn": true, "ko": true,
	"la": true, "lv": true, "ml": true, "mr": true, "ms": true, "my": true, "ne": true,
	"nl": true, "no": true, "pa": true, "pl": true, "pt": true, "ro": true, "ru": true,
	"si": true, "sk": true, "sq": true, "sr": true, "su": true, "sv": true, "sw": true,
	"ta": true, "te": true, "th": true, "tl": true, "tr": true, "uk": true, "ur": true,
	"vi": true, "zh-CN": true, "zh-TW": true,
}

// GTTSProvider implements Provider using the Google Translate TTS endpoint
type GTTSProvider struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// NewGTTSProvider creates a new Google TTS provider
func NewGTTSProvider(config *Config) *GTTSProvider {
	endpoint := config.GTTSURL
	if endpoint == "" {
		endpoint = defaultGTTSURL
	}
	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &GTTSProvider{
		endpoint: endpoint,
		client:   client,
		timeout:  timeoutOrDefault(config.Timeout),
	}
}

// Name returns the provider name
func (p *GTTSProvider) Name() string {
	return "gtts"
}

// IsAvailable always succeeds; the endpoint needs no credentials
func (p *GTTSProvider) IsAvailable() error {
	return nil
}

// Synthesize fetches MP3 audio chunk by chunk and concatenates the frames
func (p *GTTSProvider) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}
	if !gttsLanguages[lang] {
		return nil, internal.NewProviderError(p.Name(), "synthesize", fmt.Errorf("unsupported language: %s", lang))
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	chunks := splitChunks(text, maxChunkRunes)
	var buf bytes.Buffer
	for i, chunk := range chunks {
		if err := p.fetchChunk(ctx, &buf, chunk, lang, i, len(chunks)); err != nil {
			return nil, internal.NewProviderError(p.Name(), "synthesize", err)
		}
	}

	return checkAudio(p.Name(), buf.Bytes())
}

func (p *GTTSProvider) fetchChunk(ctx context.Context, w io.Writer, chunk, lang string, idx, total int) error {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", lang)
	query.Set("q", chunk)
	query.Set("total", strconv.Itoa(total))
	query.Set("idx", strconv.Itoa(idx))
	query.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chunk %d/%d: status %d", idx+1, total, resp.StatusCode)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("chunk %d/%d: %w", idx+1, total, err)
	}
	return nil
}

// splitChunks breaks text into pieces of at most max runes, preferring word
// boundaries. Words longer than max are cut.
func splitChunks(text string, max int) []string {
	var chunks []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = current[:0:0]
		}
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > max {
			flush()
			chunks = append(chunks, string(w[:max]))
			w = w[max:]
		}
		if len(current) > 0 && len(current)+1+len(w) > max {
			flush()
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, w...)
	}
	flush()

	return chunks
}
