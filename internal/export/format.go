package export

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/kannadacards/internal"
	"codeberg.org/snonux/kannadacards/internal/processor"
)

// FormatLesson renders a lesson as plain text. Failed word cards are shown
// as failed instead of with empty fields.
func FormatLesson(lesson *processor.Lesson) string {
	var b strings.Builder

	s := lesson.Sentence
	fmt.Fprintf(&b, "Punjabi:             %s\n", s.SourceText)
	fmt.Fprintf(&b, "Kannada:             %s\n", s.TranslatedText)
	fmt.Fprintf(&b, "Kannada in Gurmukhi: %s\n", s.TranslatedInSourceScript)
	fmt.Fprintf(&b, "Phonetics:           %s\n", s.Phonetics)

	if len(lesson.Cards) == 0 {
		return b.String()
	}

	b.WriteString("\nWords:\n")
	for _, c := range lesson.Cards {
		if c.Failed() {
			fmt.Fprintf(&b, "%2d. %s = %s  [failed: %s]\n", c.Index, c.SourceWord, c.TranslatedWord, UserMessage(c.Err))
			continue
		}
		fmt.Fprintf(&b, "%2d. %s = %s  (%s, %s)\n", c.Index, c.SourceWord, c.TranslatedWord,
			c.TranslatedWordInSourceScript, c.Phonetics)
	}
	return b.String()
}

// UserMessage turns a processing error into the message shown to users
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if internal.IsEmptyInput(err) {
		return "no input provided"
	}

	var perr *internal.ProviderError
	if errors.As(err, &perr) {
		if perr.Timeout() {
			return fmt.Sprintf("translation service failed: %s timed out", perr.Provider)
		}
		if perr.Err == nil {
			return "translation service failed: " + perr.Error()
		}
		return fmt.Sprintf("translation service failed: %v", perr.Err)
	}
	return err.Error()
}
