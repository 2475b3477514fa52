package script

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codeberg.org/snonux/kannadacards/internal"
)

// Aksharamukha converts scripts through the public Aksharamukha API
type Aksharamukha struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewAksharamukha creates an Aksharamukha API client
func NewAksharamukha(config *Config) *Aksharamukha {
	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	baseURL := config.AksharamukhaURL
	if baseURL == "" {
		baseURL = DefaultConfig().AksharamukhaURL
	}
	return &Aksharamukha{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: config.Timeout,
		client:  client,
	}
}

// Name returns the converter name
func (a *Aksharamukha) Name() string {
	return "aksharamukha"
}

// Convert sends the text to the API and returns the converted text
func (a *Aksharamukha) Convert(ctx context.Context, text string, from, to Script) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if from == to {
		return text, nil
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	q := url.Values{}
	q.Set("source", string(from))
	q.Set("target", string(to))
	q.Set("text", text)
	endpoint := a.baseURL + "/api/public?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", internal.NewProviderError(a.Name(), "convert", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", internal.NewProviderError(a.Name(), "convert", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", internal.NewProviderError(a.Name(), "convert", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", internal.NewProviderError(a.Name(), "convert",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	return strings.TrimSpace(string(body)), nil
}
