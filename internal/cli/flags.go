package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	BatchFile    string
	Workers      int
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	Archive      bool
	ListModels   bool
	LogFormat    string
	Debug        bool

	// Provider selection
	Translator       string
	ScriptProvider   string
	PhoneticProvider string
	AudioProvider    string
	AudioFallback    string
	Timeout          time.Duration
	NoBreaker        bool

	// Language pair
	SourceLang   string
	TargetLang   string
	SourceScript string
	TargetScript string

	// OpenAI and Gemini chat models
	ChatModel   string
	GeminiModel string

	// OpenAI TTS flags
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Workers:          1,
		DeckName:         "Punjabi to Kannada",
		LogFormat:        "console",
		Translator:       "google",
		ScriptProvider:   "unicode",
		PhoneticProvider: "itrans",
		AudioProvider:    "gtts",
		Timeout:          30 * time.Second,
		SourceLang:       "pa",
		TargetLang:       "kn",
		SourceScript:     "Gurmukhi",
		TargetScript:     "Kannada",
		ChatModel:        "gpt-4o-mini",
		GeminiModel:      "gemini-2.0-flash",
		OpenAIModel:      "gpt-4o-mini-tts",
		OpenAIVoice:      "alloy",
		OpenAISpeed:      1.0,
	}
}
