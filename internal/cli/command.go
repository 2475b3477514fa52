package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kannadacards/internal"
)

// DefaultOutputDir is where lessons are written unless configured otherwise
func DefaultOutputDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "kannadacards", "lessons")
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kannadacards [text]",
		Short: "Punjabi to Kannada lesson generator",
		Long: `kannadacards turns Punjabi text into Kannada lessons.

Every lesson holds the Kannada translation, the translation written in
Gurmukhi, its romanized pronunciation and spoken audio, for the whole
sentence and for each word.

Examples:
  kannadacards "ਸਤ ਸ੍ਰੀ ਅਕਾਲ"             # Build a lesson for one sentence
  kannadacards --batch sentences.txt    # One lesson per line
  kannadacards --batch s.txt --anki     # Also export an Anki deck
  kannadacards bot                      # Run the Telegram bot`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)
	return rootCmd
}

// CreateBotCommand creates the sub-command running the Telegram bot
func CreateBotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Long: `Run a Telegram bot answering every text message with a lesson.

The bot token is read from TELEGRAM_BOT_TOKEN or bot.token in the config file.`,
		Args: cobra.NoArgs,
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags, shared with the bot sub-command
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.kannadacards.yaml)")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log encoding: console or json")
	pf.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	pf.IntVar(&flags.Workers, "workers", flags.Workers, "Word cards built concurrently")
	pf.DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Deadline of every provider call")
	pf.BoolVar(&flags.NoBreaker, "no-breaker", false, "Disable provider circuit breakers")

	// Providers
	pf.StringVar(&flags.Translator, "translator", flags.Translator, "Translation provider: google, openai or gemini")
	pf.StringVar(&flags.ScriptProvider, "script-provider", flags.ScriptProvider, "Script converter: unicode or aksharamukha")
	pf.StringVar(&flags.PhoneticProvider, "phonetic-provider", flags.PhoneticProvider, "Phonetic transliterator: itrans or openai")
	pf.StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Audio provider: gtts, openai or espeak")
	pf.StringVar(&flags.AudioFallback, "audio-fallback", "", "Audio provider used when the primary one fails")
	pf.StringVar(&flags.ChatModel, "chat-model", flags.ChatModel, "OpenAI chat model for translation and phonetics")
	pf.StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for translation")

	// Languages
	pf.StringVar(&flags.SourceLang, "source-lang", flags.SourceLang, "Source language code")
	pf.StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Target language code")
	pf.StringVar(&flags.SourceScript, "source-script", flags.SourceScript, "Script of the source language")
	pf.StringVar(&flags.TargetScript, "target-script", flags.TargetScript, "Script of the target language")

	// OpenAI TTS flags
	pf.StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	pf.StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	pf.Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	pf.StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model (e.g., 'speak slowly')")

	// Local flags
	f := cmd.Flags()
	f.StringVarP(&flags.OutputDir, "output", "o", DefaultOutputDir(), "Output directory")
	f.StringVar(&flags.BatchFile, "batch", "", "Process sentences from file (one per line, optionally 'text = translation')")
	f.BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	f.BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG when using --anki")
	f.StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	f.BoolVar(&flags.Archive, "archive", false, "Move the output directory into the archive and exit")
	f.BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	bindFlagsToViper(cmd)
}

// viperKeys maps config keys to the flags they are bound to
var viperKeys = map[string]string{
	"log.format":               "log-format",
	"log.debug":                "debug",
	"pipeline.workers":         "workers",
	"pipeline.timeout":         "timeout",
	"pipeline.no_breaker":      "no-breaker",
	"translation.provider":     "translator",
	"translation.openai_model": "chat-model",
	"translation.gemini_model": "gemini-model",
	"script.provider":          "script-provider",
	"phonetic.provider":        "phonetic-provider",
	"audio.provider":           "audio-provider",
	"audio.fallback":           "audio-fallback",
	"audio.openai_model":       "openai-model",
	"audio.openai_voice":       "openai-voice",
	"audio.openai_speed":       "openai-speed",
	"audio.openai_instruction": "openai-instruction",
	"languages.source":         "source-lang",
	"languages.target":         "target-lang",
	"languages.source_script":  "source-script",
	"languages.target_script":  "target-script",
	"output.directory":         "output",
	"anki.deck_name":           "deck-name",
}

func bindFlagsToViper(cmd *cobra.Command) {
	for key, name := range viperKeys {
		if flag := lookupFlag(cmd, name); flag != nil {
			_ = viper.BindPFlag(key, flag)
		}
	}
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().Lookup(name)
}
