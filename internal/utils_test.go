package internal

import (
	"regexp"
	"testing"
)

func TestGenerateLessonID(t *testing.T) {
	id := GenerateLessonID("ਸਤ ਸ੍ਰੀ ਅਕਾਲ")

	if !regexp.MustCompile(`^\d+_[0-9a-f]{8}$`).MatchString(id) {
		t.Errorf("GenerateLessonID() = %q, want epochMillis_hash", id)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Kannada Vocabulary", "Kannada_Vocabulary"},
		{"deck/name:1", "deck_name_1"},
		{"ਕਨੜ ਸ਼ਬਦ", "ਕਨੜ_ਸ਼ਬਦ"},
		{"ಕನ್ನಡ", "ಕನ್ನಡ"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.expected {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
