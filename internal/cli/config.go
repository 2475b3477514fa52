package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/kannadacards/internal/processor"
	"codeberg.org/snonux/kannadacards/internal/script"
)

// InitConfig loads .env and initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".kannadacards" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kannadacards")
	}

	// KANNADACARDS_AUDIO_PROVIDER overrides audio.provider
	viper.SetEnvPrefix("KANNADACARDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	return envOrConfig("OPENAI_API_KEY", "openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	return envOrConfig("GEMINI_API_KEY", "gemini.api_key")
}

// GetBotToken retrieves the Telegram bot token from environment or config
func GetBotToken() string {
	return envOrConfig("TELEGRAM_BOT_TOKEN", "bot.token")
}

func envOrConfig(env, key string) string {
	if value := os.Getenv(env); value != "" {
		return value
	}
	return viper.GetString(key)
}

// BuildProviderConfig assembles provider settings from flags, config file
// and environment. Breaker state changes and audio fallbacks are logged to
// logger.
func BuildProviderConfig(logger *zap.Logger) *processor.ProviderConfig {
	config := processor.DefaultProviderConfig()
	timeout := viper.GetDuration("pipeline.timeout")
	if timeout <= 0 {
		timeout = processor.DefaultCallTimeout
	}
	openAIKey := GetOpenAIKey()
	chatModel := viper.GetString("translation.openai_model")

	t := config.Translation
	t.Provider = viper.GetString("translation.provider")
	t.Timeout = timeout
	t.OpenAIKey = openAIKey
	setIfNotEmpty(&t.OpenAIModel, chatModel)
	t.GeminiKey = GetGeminiKey()
	setIfNotEmpty(&t.GeminiModel, viper.GetString("translation.gemini_model"))

	config.Script.Provider = viper.GetString("script.provider")
	config.Script.Timeout = timeout
	setIfNotEmpty(&config.Script.AksharamukhaURL, viper.GetString("script.aksharamukha_url"))

	p := config.Phonetic
	p.Provider = viper.GetString("phonetic.provider")
	p.Timeout = timeout
	p.OpenAIKey = openAIKey
	setIfNotEmpty(&p.OpenAIModel, chatModel)

	a := config.Audio
	a.Provider = viper.GetString("audio.provider")
	a.Fallback = viper.GetString("audio.fallback")
	a.Timeout = timeout
	a.Logger = logger
	a.OpenAIKey = openAIKey
	setIfNotEmpty(&a.OpenAIModel, viper.GetString("audio.openai_model"))
	setIfNotEmpty(&a.OpenAIVoice, viper.GetString("audio.openai_voice"))
	if speed := viper.GetFloat64("audio.openai_speed"); speed > 0 {
		a.OpenAISpeed = speed
	}
	setIfNotEmpty(&a.OpenAIInstruction, viper.GetString("audio.openai_instruction"))
	setIfNotEmpty(&a.ESpeak.Voice, viper.GetString("audio.espeak_voice"))

	if viper.GetBool("pipeline.no_breaker") {
		config.Breaker = nil
	} else {
		config.Breaker.Logger = logger
	}
	return config
}

// BuildOptions assembles processor options from flags, config file and
// environment.
func BuildOptions() (*processor.Options, error) {
	opts := processor.DefaultOptions()

	sourceScript, err := script.ParseScript(viper.GetString("languages.source_script"))
	if err != nil {
		return nil, fmt.Errorf("invalid source script: %w", err)
	}
	targetScript, err := script.ParseScript(viper.GetString("languages.target_script"))
	if err != nil {
		return nil, fmt.Errorf("invalid target script: %w", err)
	}

	opts.Languages = processor.Languages{
		SourceLang:   viper.GetString("languages.source"),
		TargetLang:   viper.GetString("languages.target"),
		SourceScript: sourceScript,
		TargetScript: targetScript,
	}
	if opts.Languages.SourceLang == "" || opts.Languages.TargetLang == "" {
		return nil, fmt.Errorf("source and target language are required")
	}

	if workers := viper.GetInt("pipeline.workers"); workers > 0 {
		opts.Workers = workers
	}
	if timeout := viper.GetDuration("pipeline.timeout"); timeout > 0 {
		opts.CallTimeout = timeout
	}
	return opts, nil
}

// OutputDir returns the configured lesson output directory
func OutputDir() string {
	if dir := viper.GetString("output.directory"); dir != "" {
		return dir
	}
	return DefaultOutputDir()
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
