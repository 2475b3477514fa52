package models

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", "")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}
	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}
	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .kannadacards.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func newModelsServer(t *testing.T, ids ...string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Errorf("Unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}

		data := make([]map[string]string, len(ids))
		for i, id := range ids {
			data[i] = map[string]string{"id": id, "object": "model", "owned_by": "openai"}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"object": "list", "data": data})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch(t *testing.T) {
	server := newModelsServer(t, "tts-1-hd", "gpt-4o-mini", "gpt-4o-audio-preview", "dall-e-3", "gpt-4o-mini-tts", "gpt-3.5-turbo", "whisper-1")
	lister := NewLister("test-key", server.URL+"/v1")

	m, err := lister.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	wantSpeech := []string{"gpt-4o-mini-tts", "tts-1-hd"}
	wantChat := []string{"gpt-3.5-turbo", "gpt-4o-mini"}
	if strings.Join(m.Speech, ",") != strings.Join(wantSpeech, ",") {
		t.Errorf("Speech = %v, want %v", m.Speech, wantSpeech)
	}
	if strings.Join(m.Chat, ",") != strings.Join(wantChat, ",") {
		t.Errorf("Chat = %v, want %v", m.Chat, wantChat)
	}
}

func TestListAvailableModels(t *testing.T) {
	server := newModelsServer(t, "gpt-4o-mini")
	lister := NewLister("test-key", server.URL+"/v1")

	var out bytes.Buffer
	if err := lister.ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "  gpt-4o-mini\n") {
		t.Errorf("Output is missing the chat model:\n%s", got)
	}
	if !strings.Contains(got, "none found") {
		t.Errorf("Output should report the missing speech models:\n%s", got)
	}
}

func TestListAvailableModels_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	lister := NewLister("test-key", server.URL+"/v1")
	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "failed to list models") {
		t.Errorf("Expected list failure, got %v", err)
	}
}
