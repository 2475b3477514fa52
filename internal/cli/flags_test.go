package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Workers", flags.Workers, 1},
		{"DeckName", flags.DeckName, "Punjabi to Kannada"},
		{"LogFormat", flags.LogFormat, "console"},
		{"Translator", flags.Translator, "google"},
		{"ScriptProvider", flags.ScriptProvider, "unicode"},
		{"PhoneticProvider", flags.PhoneticProvider, "itrans"},
		{"AudioProvider", flags.AudioProvider, "gtts"},
		{"Timeout", flags.Timeout, 30 * time.Second},
		{"SourceLang", flags.SourceLang, "pa"},
		{"TargetLang", flags.TargetLang, "kn"},
		{"SourceScript", flags.SourceScript, "Gurmukhi"},
		{"TargetScript", flags.TargetScript, "Kannada"},
		{"ChatModel", flags.ChatModel, "gpt-4o-mini"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAISpeed", flags.OpenAISpeed, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	boolTests := []struct {
		name  string
		value bool
	}{
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
		{"Debug", flags.Debug},
		{"NoBreaker", flags.NoBreaker},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s should default to false", tt.name)
			}
		})
	}

	if flags.AudioFallback != "" || flags.BatchFile != "" || flags.CfgFile != "" {
		t.Error("Optional string flags should default to empty")
	}
}
