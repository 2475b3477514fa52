package phonetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/kannadacards/internal"
	"codeberg.org/snonux/kannadacards/internal/script"
)

// OpenAITransliterator romanizes text through the OpenAI chat API
type OpenAITransliterator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAITransliterator creates a new OpenAI-backed romanizer
func NewOpenAITransliterator(config *Config) *OpenAITransliterator {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &OpenAITransliterator{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}
}

// Name returns the transliterator name
func (o *OpenAITransliterator) Name() string {
	return "openai"
}

// ToPhonetics asks the model for an ITRANS romanization of text
func (o *OpenAITransliterator) ToPhonetics(ctx context.Context, text string, from script.Script) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &internal.EmptyInputError{Field: "text"}
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You romanize Indic text for language learners. Reply with the ITRANS romanization only, keeping word boundaries and punctuation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Romanize this %s text: %s", from, text),
			},
		},
		Temperature: 0,
		MaxTokens:   200,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", internal.NewProviderError(o.Name(), "romanize", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", internal.NewProviderError(o.Name(), "romanize", fmt.Errorf("no response from OpenAI"))
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
