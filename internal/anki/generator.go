package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/kannadacards/internal/processor"
)

// Card represents a single Anki flashcard
type Card struct {
	Punjabi           string // The source word or sentence
	Kannada           string // Its Kannada translation
	KannadaInGurmukhi string // The translation written in Gurmukhi
	Phonetics         string // Romanized pronunciation
	AudioName         string // Media filename, unique within a deck
	Audio             []byte // MP3 data
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	MediaFolder    string // Folder the audio files are written to, empty skips them
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		MediaFolder:    ".",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddLesson adds the sentence of a lesson and each of its successful word
// cards. Media names are prefixed with lessonID. It returns the number of
// cards added.
func (g *Generator) AddLesson(lessonID string, lesson *processor.Lesson) int {
	cards := CardsFromLesson(lessonID, lesson)
	g.cards = append(g.cards, cards...)
	return len(cards)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// CardsFromLesson converts a lesson into Anki cards. Failed word cards are
// left out.
func CardsFromLesson(lessonID string, lesson *processor.Lesson) []Card {
	if lesson == nil || lesson.Sentence == nil {
		return nil
	}

	s := lesson.Sentence
	cards := []Card{{
		Punjabi:           s.SourceText,
		Kannada:           s.TranslatedText,
		KannadaInGurmukhi: s.TranslatedInSourceScript,
		Phonetics:         s.Phonetics,
		AudioName:         fmt.Sprintf("%s_sentence.mp3", lessonID),
		Audio:             s.Audio,
	}}

	for _, c := range lesson.Cards {
		if c.Failed() {
			continue
		}
		cards = append(cards, Card{
			Punjabi:           c.SourceWord,
			Kannada:           c.TranslatedWord,
			KannadaInGurmukhi: c.TranslatedWordInSourceScript,
			Phonetics:         c.Phonetics,
			AudioName:         fmt.Sprintf("%s_word_%d.mp3", lessonID, c.Index),
			Audio:             c.Audio,
		})
	}
	return cards
}

// GenerateCSV creates a CSV file for Anki import and writes the audio of
// every card into MediaFolder.
func (g *Generator) GenerateCSV() error {
	if dir := filepath.Dir(g.options.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		if err := writer.Write(fieldNames); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Punjabi,
			card.Kannada,
			card.KannadaInGurmukhi,
			card.Phonetics,
			formatAudioField(card.AudioName),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}

	return g.writeMedia()
}

func (g *Generator) writeMedia() error {
	if g.options.MediaFolder == "" {
		return nil
	}
	if err := os.MkdirAll(g.options.MediaFolder, 0755); err != nil {
		return fmt.Errorf("failed to create media folder: %w", err)
	}

	for _, card := range g.cards {
		if card.AudioName == "" || len(card.Audio) == 0 {
			continue
		}
		path := filepath.Join(g.options.MediaFolder, card.AudioName)
		if err := os.WriteFile(path, card.Audio, 0644); err != nil {
			return fmt.Errorf("failed to write audio file %s: %w", card.AudioName, err)
		}
	}
	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withAudio int) {
	totalCards = len(g.cards)
	for _, card := range g.cards {
		if len(card.Audio) > 0 {
			withAudio++
		}
	}
	return
}

// fieldNames are the note fields in export order
var fieldNames = []string{"Punjabi", "Kannada", "Kannada in Gurmukhi", "Phonetics", "Audio"}

// formatAudioField formats the audio file reference for Anki
func formatAudioField(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("[sound:%s]", filepath.Base(name))
}
