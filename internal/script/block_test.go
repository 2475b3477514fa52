package script

import (
	"context"
	"testing"

	"codeberg.org/snonux/kannadacards/internal"
)

func TestBlockConverter_KannadaToGurmukhi(t *testing.T) {
	c := NewBlockConverter()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hello", "ಹಲೋ", "ਹਲੋ"},
		{"conjunct with virama", "ಕನ್ನಡ", "ਕਨ੍ਨਡ"},
		{"short e falls back to long e", "ಎಲ್ಲಿ", "ਏਲ੍ਲਿ"},
		{"ssa becomes sha", "ಭಾಷೆ", "ਭਾ\u0a36ੇ"},
		{"vocalic r sign", "ಕೃಷ್ಣ", "ਕ੍ਰਿ\u0a36੍ਣ"},
		{"anusvara", "ಸಂಜೆ", "ਸਂਜੇ"},
		{"punctuation and spaces pass through", "ಹೌದು, ಬನ್ನಿ!", "ਹੌਦੁ, ਬਨ੍ਨਿ!"},
		{"digits", "೨೦೨೬", "੨੦੨੬"},
		{"latin passes through", "OK ಸರಿ", "OK ਸਰਿ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(context.Background(), tt.input, Kannada, Gurmukhi)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBlockConverter_GurmukhiToKannada(t *testing.T) {
	c := NewBlockConverter()

	tests := []struct {
		input    string
		expected string
	}{
		{"ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "ಸತ ಸ್ರೀ ಅಕಾಲ"},
		{"ਪੰਜਾਬ", "ಪಂಜಾಬ"},
		{"\u0a59ਬਰ", "ಖ಼ಬರ"},
		{"ਪੱਗ", "ಪಗ"},
	}

	for _, tt := range tests {
		got, err := c.Convert(context.Background(), tt.input, Gurmukhi, Kannada)
		if err != nil {
			t.Fatalf("Convert(%q) error = %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBlockConverter_EmptyInput(t *testing.T) {
	c := NewBlockConverter()

	for _, input := range []string{"", "   "} {
		got, err := c.Convert(context.Background(), input, Kannada, Gurmukhi)
		if err != nil {
			t.Errorf("Convert(%q) unexpected error: %v", input, err)
		}
		if got != input {
			t.Errorf("Convert(%q) = %q, want input unchanged", input, got)
		}
	}
}

func TestBlockConverter_SameScript(t *testing.T) {
	c := NewBlockConverter()

	got, err := c.Convert(context.Background(), "ಹಲೋ", Kannada, Kannada)
	if err != nil || got != "ಹಲೋ" {
		t.Errorf("Convert() = %q, %v; want identity", got, err)
	}
}

func TestBlockConverter_UnsupportedScript(t *testing.T) {
	c := NewBlockConverter()

	_, err := c.Convert(context.Background(), "ಹಲೋ", Kannada, Script("Klingon"))
	if err == nil {
		t.Fatal("Expected error for unsupported script")
	}
	if !internal.IsProviderError(err) {
		t.Errorf("Expected ProviderError, got %T: %v", err, err)
	}

	_, err = c.Convert(context.Background(), "ਹਲੋ", Script("Latin"), Kannada)
	if !internal.IsProviderError(err) {
		t.Errorf("Expected ProviderError for unsupported source, got %v", err)
	}
}

func TestBlockConverter_RoundTrip(t *testing.T) {
	c := NewBlockConverter()
	ctx := context.Background()

	// Letters present in both scripts survive a round trip
	original := "ನಮಸ್ಕಾರ"
	gm, err := c.Convert(ctx, original, Kannada, Gurmukhi)
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Convert(ctx, gm, Gurmukhi, Kannada)
	if err != nil {
		t.Fatal(err)
	}
	if back != original {
		t.Errorf("round trip = %q, want %q (via %q)", back, original, gm)
	}
}
