package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/kannadacards/internal"
)

// OpenAITranslator translates through the OpenAI chat API
type OpenAITranslator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAITranslator creates a new OpenAI translator
func NewOpenAITranslator(config *Config) *OpenAITranslator {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAITranslator{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeoutOrDefault(config.Timeout),
	}
}

// Name returns the translator name
func (t *OpenAITranslator) Name() string {
	return "openai"
}

// Translate asks the model for a translation and nothing else
func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &internal.EmptyInputError{Field: "text"}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(text, sourceLang, targetLang),
			},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", internal.NewProviderError(t.Name(), "translate", err)
	}

	if len(resp.Choices) == 0 {
		return "", internal.NewProviderError(t.Name(), "translate", fmt.Errorf("no translation returned"))
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", internal.NewProviderError(t.Name(), "translate", fmt.Errorf("no translation returned"))
	}
	return translation, nil
}

func prompt(text, sourceLang, targetLang string) string {
	return fmt.Sprintf("Translate the following text from language '%s' to language '%s'. "+
		"Write the translation in the native script of '%s'. Respond with only the translation, nothing else.\n\n%s",
		sourceLang, targetLang, targetLang, text)
}
