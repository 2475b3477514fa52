package audio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"codeberg.org/snonux/kannadacards/internal"
)

// OpenAIProvider implements Provider interface for OpenAI TTS
type OpenAIProvider struct {
	client  *openai.Client
	config  *Config
	timeout time.Duration
	logger  *zap.Logger
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		config:  config,
		timeout: timeoutOrDefault(config.Timeout),
		logger:  logger,
	}, nil
}

// Synthesize generates MP3 audio using OpenAI TTS. The model detects the
// language from the script; lang is logged for diagnostics.
func (p *OpenAIProvider) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	processedText := preprocessText(text)
	if processedText == "" {
		return nil, &internal.EmptyInputError{Field: "text"}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.logger.Debug("OpenAI TTS request",
		zap.String("model", p.config.OpenAIModel),
		zap.String("voice", p.config.OpenAIVoice),
		zap.Float64("speed", p.config.OpenAISpeed),
		zap.String("lang", lang),
		zap.String("input", processedText))

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          processedText,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}

	// Add instructions for gpt-4o-mini-tts model
	if p.config.OpenAIInstruction != "" && supportsInstructions(p.config.OpenAIModel) {
		req.Instructions = p.config.OpenAIInstruction
	}

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		// Check if it's a model access error
		if strings.Contains(err.Error(), "does not have access to model") && supportsInstructions(p.config.OpenAIModel) {
			err = fmt.Errorf("%w (the %s model requires access, try --openai-model tts-1-hd instead)", err, p.config.OpenAIModel)
		}
		return nil, internal.NewProviderError(p.Name(), "synthesize", err)
	}
	defer func() { _ = response.Close() }()

	data, err := io.ReadAll(response)
	if err != nil {
		return nil, internal.NewProviderError(p.Name(), "synthesize", fmt.Errorf("failed to read audio: %w", err))
	}

	return checkAudio(p.Name(), data)
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// A test call would use credits
	return nil
}

func supportsInstructions(model string) bool {
	return model == "gpt-4o-mini-tts" || model == "gpt-4o-mini-audio-preview"
}

// preprocessText removes punctuation that should not be spoken
func preprocessText(text string) string {
	cleanedText := strings.TrimSpace(text)

	punctuationToRemove := []string{"!", "?", ".", ",", ";", ":", "\"", "'", "(", ")", "[", "]", "{", "}", "-", "—", "–", "।", "॥"}
	for _, punct := range punctuationToRemove {
		cleanedText = strings.ReplaceAll(cleanedText, punct, "")
	}

	return strings.TrimSpace(cleanedText)
}
