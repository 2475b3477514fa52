package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL uses the OpenAI API.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// Models holds model IDs grouped by the back end that can use them
type Models struct {
	Speech []string // For the openai audio provider
	Chat   []string // For the openai translator and phonetic provider
}

// Fetch retrieves and categorizes the models available to the API key
func (l *Lister) Fetch(ctx context.Context) (*Models, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .kannadacards.yaml")
	}

	list, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	m := &Models{}
	for _, model := range list.Models {
		id := model.ID
		switch {
		case strings.Contains(id, "tts"):
			m.Speech = append(m.Speech, id)
		case strings.Contains(id, "audio") || strings.Contains(id, "realtime") || strings.Contains(id, "transcribe"):
			// audio-in models cannot serve any back end
		case strings.HasPrefix(id, "gpt-") || strings.Contains(id, "chat"):
			m.Chat = append(m.Chat, id)
		}
	}

	sort.Strings(m.Speech)
	sort.Strings(m.Chat)
	return m, nil
}

// ListAvailableModels writes the available models to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	m, err := l.Fetch(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available OpenAI Models:")
	printGroup(w, "Text-to-Speech Models (--audio-provider openai):", m.Speech)
	printGroup(w, "Chat Models (--translator openai, --phonetic-provider openai):", m.Chat)
	return nil
}

func printGroup(w io.Writer, title string, ids []string) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(ids) == 0 {
		fmt.Fprintln(w, "  none found")
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
