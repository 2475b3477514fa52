package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	t.Cleanup(viper.Reset)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "kannadacards [text]" {
		t.Errorf("Expected Use to be 'kannadacards [text]', got %s", cmd.Use)
	}
	if !strings.Contains(cmd.Short, "Punjabi to Kannada") {
		t.Errorf("Expected Short description to mention 'Punjabi to Kannada', got %s", cmd.Short)
	}

	persistent := []string{
		"config", "log-format", "debug", "workers", "timeout", "no-breaker",
		"translator", "script-provider", "phonetic-provider", "audio-provider", "audio-fallback",
		"chat-model", "gemini-model", "source-lang", "target-lang", "source-script", "target-script",
		"openai-model", "openai-voice", "openai-speed", "openai-instruction",
	}
	for _, name := range persistent {
		t.Run("persistent_"+name, func(t *testing.T) {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("Expected persistent flag %s to exist", name)
			}
		})
	}

	local := []string{"output", "batch", "anki", "anki-csv", "deck-name", "archive", "list-models"}
	for _, name := range local {
		t.Run("local_"+name, func(t *testing.T) {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	if f := cmd.Flags().Lookup("output"); f == nil || f.Shorthand != "o" {
		t.Error("Expected output flag with shorthand -o")
	}
}

func TestSetupFlagsDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	outputFlag := cmd.Flags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}
	if outputFlag.DefValue != DefaultOutputDir() {
		t.Errorf("Expected default output dir to be %s, got %s", DefaultOutputDir(), outputFlag.DefValue)
	}
	if !strings.HasSuffix(DefaultOutputDir(), "kannadacards/lessons") {
		t.Errorf("Unexpected default output dir %s", DefaultOutputDir())
	}

	if f := cmd.PersistentFlags().Lookup("translator"); f.DefValue != "google" {
		t.Errorf("Expected default translator google, got %s", f.DefValue)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	cmd.Flags().Set("output", "/test/output")
	cmd.PersistentFlags().Set("openai-model", "tts-1-hd")
	cmd.PersistentFlags().Set("workers", "4")
	cmd.PersistentFlags().Set("timeout", "5s")

	if viper.GetString("output.directory") != "/test/output" {
		t.Errorf("Expected output.directory to be /test/output, got %s", viper.GetString("output.directory"))
	}
	if viper.GetString("audio.openai_model") != "tts-1-hd" {
		t.Errorf("Expected audio.openai_model to be tts-1-hd, got %s", viper.GetString("audio.openai_model"))
	}
	if viper.GetInt("pipeline.workers") != 4 {
		t.Errorf("Expected pipeline.workers to be 4, got %d", viper.GetInt("pipeline.workers"))
	}
	if viper.GetString("translation.provider") != "google" {
		t.Errorf("Expected unchanged flags to provide defaults, got %q", viper.GetString("translation.provider"))
	}
}

func TestCreateBotCommand(t *testing.T) {
	root := CreateRootCommand(NewFlags())
	t.Cleanup(viper.Reset)
	root.AddCommand(CreateBotCommand())

	bot, _, err := root.Find([]string{"bot"})
	if err != nil {
		t.Fatalf("bot sub-command not found: %v", err)
	}
	if bot.Use != "bot" {
		t.Errorf("Expected Use 'bot', got %s", bot.Use)
	}
	if bot.InheritedFlags().Lookup("translator") == nil {
		t.Error("bot sub-command should inherit provider flags")
	}
}
