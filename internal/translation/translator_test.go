package translation

import "testing"

func TestNewTranslator(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{"nil config defaults to google", nil, "google", false},
		{"empty provider defaults to google", &Config{}, "google", false},
		{"openai", &Config{Provider: "openai", OpenAIKey: "key"}, "openai", false},
		{"openai without key", &Config{Provider: "openai"}, "", true},
		{"gemini", &Config{Provider: "gemini", GeminiKey: "key"}, "gemini", false},
		{"gemini without key", &Config{Provider: "gemini"}, "", true},
		{"unknown", &Config{Provider: "babelfish"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTranslator(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tr.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", tr.Name(), tt.wantName)
			}
		})
	}
}

func TestParseGoogleResponse(t *testing.T) {
	got, err := parseGoogleResponse([]byte(`[[["ಒಂದು ","ਇੱਕ ",null],["ಎರಡು","ਦੋ",null]],null,"pa"]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ಒಂದು ಎರಡು" {
		t.Errorf("parseGoogleResponse = %q, want %q", got, "ಒಂದು ಎರಡು")
	}
}
