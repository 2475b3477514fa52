package script

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/snonux/kannadacards/internal"
)

func TestAksharamukha_Convert(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = map[string]string{
			"source": r.URL.Query().Get("source"),
			"target": r.URL.Query().Get("target"),
			"text":   r.URL.Query().Get("text"),
		}
		w.Write([]byte("ਹਲੋ\n"))
	}))
	defer server.Close()

	a := NewAksharamukha(&Config{AksharamukhaURL: server.URL + "/", Timeout: time.Second})

	got, err := a.Convert(context.Background(), "ಹಲೋ", Kannada, Gurmukhi)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != "ਹਲੋ" {
		t.Errorf("Convert() = %q, want %q", got, "ਹਲੋ")
	}
	if gotQuery["source"] != "Kannada" || gotQuery["target"] != "Gurmukhi" || gotQuery["text"] != "ಹಲೋ" {
		t.Errorf("unexpected query: %v", gotQuery)
	}
}

func TestAksharamukha_EmptyInputSkipsRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	a := NewAksharamukha(&Config{AksharamukhaURL: server.URL})

	got, err := a.Convert(context.Background(), "", Kannada, Gurmukhi)
	if err != nil || got != "" {
		t.Errorf("Convert(\"\") = %q, %v; want empty, nil", got, err)
	}
	if calls != 0 {
		t.Errorf("Expected no API calls, got %d", calls)
	}
}

func TestAksharamukha_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script pair not supported", http.StatusBadRequest)
	}))
	defer server.Close()

	a := NewAksharamukha(&Config{AksharamukhaURL: server.URL})

	_, err := a.Convert(context.Background(), "ಹಲೋ", Kannada, Gurmukhi)
	if err == nil {
		t.Fatal("Expected error for HTTP 400")
	}
	if !internal.IsProviderError(err) {
		t.Errorf("Expected ProviderError, got %v", err)
	}
}

func TestAksharamukha_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	a := NewAksharamukha(&Config{AksharamukhaURL: server.URL, Timeout: 20 * time.Millisecond})

	_, err := a.Convert(context.Background(), "ಹಲೋ", Kannada, Gurmukhi)
	if !internal.IsProviderError(err) {
		t.Fatalf("Expected ProviderError on timeout, got %v", err)
	}
}
