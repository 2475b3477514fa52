package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"codeberg.org/snonux/kannadacards/internal"
)

// GeminiTranslator translates through the Gemini API
type GeminiTranslator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiTranslator creates a new Gemini translator
func NewGeminiTranslator(ctx context.Context, config *Config) (*GeminiTranslator, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.GeminiBaseURL}
	}
	if config.HTTPClient != nil {
		clientConfig.HTTPClient = config.HTTPClient
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiTranslator{
		client:  client,
		model:   model,
		timeout: timeoutOrDefault(config.Timeout),
	}, nil
}

// Name returns the translator name
func (g *GeminiTranslator) Name() string {
	return "gemini"
}

// Translate asks Gemini for a translation and nothing else
func (g *GeminiTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &internal.EmptyInputError{Field: "text"}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temperature := float32(0.3)
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt(text, sourceLang, targetLang)),
		&genai.GenerateContentConfig{Temperature: &temperature})
	if err != nil {
		return "", internal.NewProviderError(g.Name(), "translate", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", internal.NewProviderError(g.Name(), "translate", fmt.Errorf("no translation returned"))
	}
	return translation, nil
}
