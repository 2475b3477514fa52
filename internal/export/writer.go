package export

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/kannadacards/internal"
	"codeberg.org/snonux/kannadacards/internal/processor"
)

const (
	SentenceAudioFile = "sentence.mp3"
	LessonTextFile    = "lesson.txt"
)

// WordAudioFile returns the audio filename of the word card with index i
func WordAudioFile(i int) string {
	return fmt.Sprintf("word_%d.mp3", i)
}

// WordErrorFile returns the file describing why word card i failed
func WordErrorFile(i int) string {
	return fmt.Sprintf("word_%d.error.txt", i)
}

// WriteLesson writes lesson into a new directory below outputDir and
// returns its path. The directory is named after a lesson ID derived from
// the source text.
func WriteLesson(outputDir string, lesson *processor.Lesson) (string, error) {
	if lesson == nil || lesson.Sentence == nil {
		return "", fmt.Errorf("nothing to export")
	}

	lessonDir := filepath.Join(outputDir, internal.GenerateLessonID(lesson.Sentence.SourceText))
	if err := WriteLessonTo(lessonDir, lesson); err != nil {
		return "", err
	}
	return lessonDir, nil
}

// WriteLessonTo writes lesson into dir, creating it if needed
func WriteLessonTo(dir string, lesson *processor.Lesson) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create lesson directory: %w", err)
	}

	if err := writeFile(dir, SentenceAudioFile, lesson.Sentence.Audio); err != nil {
		return err
	}

	for _, card := range lesson.Cards {
		if card.Failed() {
			msg := fmt.Sprintf("%s = %s\n%v\n", card.SourceWord, card.TranslatedWord, card.Err)
			if err := writeFile(dir, WordErrorFile(card.Index), []byte(msg)); err != nil {
				return err
			}
			continue
		}
		if err := writeFile(dir, WordAudioFile(card.Index), card.Audio); err != nil {
			return err
		}
	}

	return writeFile(dir, LessonTextFile, []byte(FormatLesson(lesson)))
}

func writeFile(dir, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
