package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Voice     string // Voice variant (e.g., "kn", "kn+m1"); empty uses the requested language
	Speed     int    // Speech speed in words per minute (default: 150)
	Pitch     int    // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int    // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int    // Gap between words in 10ms units (default: 0)

	Timeout time.Duration // Per-call timeout covering espeak-ng and ffmpeg
}

// DefaultConfig returns the default espeak-ng configuration
func DefaultConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Speed:     150,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
	}
}

// normalize clamps all settings into the ranges espeak-ng accepts
func (c *ESpeakConfig) normalize() {
	c.Speed = clamp(c.Speed, 80, 450)
	c.Pitch = clamp(c.Pitch, 0, 99)
	c.Amplitude = clamp(c.Amplitude, 0, 200)
	if c.WordGap < 0 {
		c.WordGap = 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	config *ESpeakConfig
}

// New creates a new ESpeak instance with the given configuration
func New(config *ESpeakConfig) (*ESpeak, error) {
	// Check if espeak-ng is installed
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	cfg.normalize()

	return &ESpeak{config: &cfg}, nil
}

// args builds the espeak-ng command line for a voice
func (e *ESpeak) args(voice, outputFile, text string) []string {
	args := []string{
		"-v", voice,
		"-s", strconv.Itoa(e.config.Speed),
		"-p", strconv.Itoa(e.config.Pitch),
		"-a", strconv.Itoa(e.config.Amplitude),
	}

	if e.config.WordGap > 0 {
		args = append(args, "-g", strconv.Itoa(e.config.WordGap))
	}

	return append(args, "-w", outputFile, text)
}

// GenerateWAV writes a WAV file for text spoken with voice
func (e *ESpeak) GenerateWAV(ctx context.Context, text, voice, outputFile string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	cmd := exec.CommandContext(ctx, "espeak-ng", e.args(voice, outputFile, text)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// GenerateMP3 returns MP3 audio for text spoken with voice
func (e *ESpeak) GenerateMP3(ctx context.Context, text, voice string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "kannadacards-espeak-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	wavFile := filepath.Join(tmpDir, "speech.wav")
	mp3File := filepath.Join(tmpDir, "speech.mp3")

	if err := e.GenerateWAV(ctx, text, voice, wavFile); err != nil {
		return nil, err
	}
	if err := ConvertWAVToMP3(ctx, wavFile, mp3File); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(mp3File)
	if err != nil {
		return nil, fmt.Errorf("failed to read MP3 file: %w", err)
	}
	return data, nil
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// ListVoices returns espeak-ng voice variants for a language
func ListVoices(lang string) []string {
	voices := []string{lang}
	for _, variant := range []string{"m1", "m2", "m3", "f1", "f2", "f3"} {
		voices = append(voices, lang+"+"+variant)
	}
	return voices
}

// ConvertWAVToMP3 converts a WAV file to MP3 using ffmpeg
func ConvertWAVToMP3(ctx context.Context, wavFile, mp3File string) error {
	// Check if ffmpeg is installed
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", mp3File)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}
