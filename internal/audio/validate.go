package audio

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/kannadacards/internal"
)

// ValidateText rejects blank text so that silence is never synthesized
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &internal.EmptyInputError{Field: "text"}
	}
	return nil
}

// checkAudio turns an empty audio buffer into a provider error
func checkAudio(provider string, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, internal.NewProviderError(provider, "synthesize", fmt.Errorf("no audio data received"))
	}
	return data, nil
}
