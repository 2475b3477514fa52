package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kannadacards/internal/processor"
	"codeberg.org/snonux/kannadacards/internal/script"
)

// setupViper binds fresh flags to a reset viper and returns the command
func setupViper(t *testing.T) *cobra.Command {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())
	return cmd
}

func TestInitConfig(t *testing.T) {
	t.Run("with config file", func(t *testing.T) {
		setupViper(t)
		t.Chdir(t.TempDir())

		cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
		content := `audio:
  provider: openai
output:
  directory: /test/output
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test config: %v", err)
		}

		InitConfig(cfgPath)

		if got := viper.GetString("audio.provider"); got != "openai" {
			t.Errorf("audio.provider = %q, want openai", got)
		}
		if got := OutputDir(); got != "/test/output" {
			t.Errorf("OutputDir() = %q, want /test/output", got)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		setupViper(t)
		t.Chdir(t.TempDir())
		t.Setenv("KANNADACARDS_AUDIO_PROVIDER", "espeak")

		InitConfig("")

		if got := viper.GetString("audio.provider"); got != "espeak" {
			t.Errorf("audio.provider = %q, want espeak", got)
		}
	})

	t.Run("dotenv file", func(t *testing.T) {
		setupViper(t)
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		os.Unsetenv("TELEGRAM_BOT_TOKEN")

		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TELEGRAM_BOT_TOKEN=from-dotenv\n"), 0644); err != nil {
			t.Fatal(err)
		}

		InitConfig("")

		if got := GetBotToken(); got != "from-dotenv" {
			t.Errorf("GetBotToken() = %q, want from-dotenv", got)
		}
	})
}

func TestSecrets(t *testing.T) {
	tests := []struct {
		name string
		get  func() string
		env  string
		key  string
	}{
		{"openai", GetOpenAIKey, "OPENAI_API_KEY", "openai.api_key"},
		{"gemini", GetGeminiKey, "GEMINI_API_KEY", "gemini.api_key"},
		{"bot", GetBotToken, "TELEGRAM_BOT_TOKEN", "bot.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupViper(t)
			t.Setenv(tt.env, "")

			if got := tt.get(); got != "" {
				t.Errorf("expected empty value, got %q", got)
			}

			viper.Set(tt.key, "config-value")
			if got := tt.get(); got != "config-value" {
				t.Errorf("expected config value, got %q", got)
			}

			t.Setenv(tt.env, "env-value")
			if got := tt.get(); got != "env-value" {
				t.Errorf("environment must win over config, got %q", got)
			}
		})
	}
}

func TestBuildProviderConfig(t *testing.T) {
	cmd := setupViper(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	pf := cmd.PersistentFlags()
	pf.Set("translator", "openai")
	pf.Set("chat-model", "gpt-4o")
	pf.Set("audio-provider", "openai")
	pf.Set("audio-fallback", "gtts")
	pf.Set("openai-voice", "nova")
	pf.Set("timeout", "10s")

	config := BuildProviderConfig(nil)

	if config.Translation.Provider != "openai" || config.Translation.OpenAIModel != "gpt-4o" {
		t.Errorf("Unexpected translation config: %+v", config.Translation)
	}
	if config.Translation.OpenAIKey != "sk-test" || config.Audio.OpenAIKey != "sk-test" || config.Phonetic.OpenAIKey != "sk-test" {
		t.Error("OpenAI key must reach every openai back end")
	}
	if config.Phonetic.OpenAIModel != "gpt-4o" {
		t.Errorf("Phonetic model = %q, want gpt-4o", config.Phonetic.OpenAIModel)
	}
	if config.Audio.Fallback != "gtts" || config.Audio.OpenAIVoice != "nova" {
		t.Errorf("Unexpected audio config: %+v", config.Audio)
	}
	for name, got := range map[string]time.Duration{
		"translation": config.Translation.Timeout,
		"script":      config.Script.Timeout,
		"phonetic":    config.Phonetic.Timeout,
		"audio":       config.Audio.Timeout,
	} {
		if got != 10*time.Second {
			t.Errorf("%s timeout = %v, want 10s", name, got)
		}
	}
	if config.Breaker == nil {
		t.Error("Breakers should be enabled by default")
	}
}

func TestBuildProviderConfig_NoBreaker(t *testing.T) {
	cmd := setupViper(t)
	cmd.PersistentFlags().Set("no-breaker", "true")

	if config := BuildProviderConfig(nil); config.Breaker != nil {
		t.Error("--no-breaker should disable circuit breakers")
	}
}

func TestBuildOptions(t *testing.T) {
	cmd := setupViper(t)
	cmd.PersistentFlags().Set("workers", "3")

	opts, err := BuildOptions()
	if err != nil {
		t.Fatalf("BuildOptions failed: %v", err)
	}
	if opts.Languages != processor.DefaultLanguages() {
		t.Errorf("Languages = %+v, want defaults", opts.Languages)
	}
	if opts.Workers != 3 {
		t.Errorf("Workers = %d, want 3", opts.Workers)
	}
	if opts.CallTimeout != 30*time.Second {
		t.Errorf("CallTimeout = %v, want 30s", opts.CallTimeout)
	}
}

func TestBuildOptions_ScriptOverride(t *testing.T) {
	cmd := setupViper(t)
	cmd.PersistentFlags().Set("source-script", "devanagari")
	cmd.PersistentFlags().Set("source-lang", "hi")

	opts, err := BuildOptions()
	if err != nil {
		t.Fatalf("BuildOptions failed: %v", err)
	}
	if opts.Languages.SourceScript != script.Devanagari || opts.Languages.SourceLang != "hi" {
		t.Errorf("Unexpected languages: %+v", opts.Languages)
	}
}

func TestBuildOptions_InvalidScript(t *testing.T) {
	cmd := setupViper(t)
	cmd.PersistentFlags().Set("target-script", "Klingon")

	if _, err := BuildOptions(); err == nil {
		t.Error("Expected error for an unsupported script")
	}
}
