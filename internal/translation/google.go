package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codeberg.org/snonux/kannadacards/internal"
)

const defaultGoogleURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator uses the free Google Translate web endpoint
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// NewGoogleTranslator creates a new Google Translate client
func NewGoogleTranslator(config *Config) *GoogleTranslator {
	endpoint := config.GoogleURL
	if endpoint == "" {
		endpoint = defaultGoogleURL
	}
	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &GoogleTranslator{
		endpoint: endpoint,
		client:   client,
		timeout:  timeoutOrDefault(config.Timeout),
	}
}

// Name returns the translator name
func (g *GoogleTranslator) Name() string {
	return "google"
}

// Translate sends text to the translate endpoint and joins the returned segments
func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &internal.EmptyInputError{Field: "text"}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceLang)
	query.Set("tl", targetLang)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", internal.NewProviderError(g.Name(), "translate", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", internal.NewProviderError(g.Name(), "translate", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", internal.NewProviderError(g.Name(), "translate", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", internal.NewProviderError(g.Name(), "translate",
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	translated, err := parseGoogleResponse(body)
	if err != nil {
		return "", internal.NewProviderError(g.Name(), "translate", err)
	}
	return translated, nil
}

// parseGoogleResponse extracts the translated segments from the nested
// array the endpoint returns: [[["translated","source",...],...],...]
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected response layout: %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			sb.WriteString(s)
		}
	}

	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translated, nil
}
