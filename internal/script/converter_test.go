package script

import "testing"

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{"nil config uses defaults", nil, "unicode", false},
		{"unicode", &Config{Provider: "unicode"}, "unicode", false},
		{"empty provider", &Config{}, "unicode", false},
		{"aksharamukha", &Config{Provider: "aksharamukha"}, "aksharamukha", false},
		{"unknown", &Config{Provider: "icu"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConverter(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewConverter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && c.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.wantName)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	tests := []struct {
		input   string
		want    Script
		wantErr bool
	}{
		{"Kannada", Kannada, false},
		{"gurmukhi", Gurmukhi, false},
		{" DEVANAGARI ", Devanagari, false},
		{"Latin", "", true},
	}

	for _, tt := range tests {
		got, err := ParseScript(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScript(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseScript(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains(Kannada, "hello ಹಲೋ") {
		t.Error("Expected Kannada letters to be detected")
	}
	if Contains(Kannada, "ਹੈਲੋ") {
		t.Error("Gurmukhi text must not count as Kannada")
	}
	if Offset(Gurmukhi, 'ਹ') != 0x39 {
		t.Errorf("Offset(ਹ) = %#x, want 0x39", Offset(Gurmukhi, 'ਹ'))
	}
	if Offset(Gurmukhi, 'a') != -1 {
		t.Error("Latin rune must have no offset")
	}
}
