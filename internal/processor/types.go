package processor

import "codeberg.org/snonux/kannadacards/internal/script"

// Languages names the language pair and the scripts they are written in
type Languages struct {
	SourceLang   string // ISO-639-1 code of the input, e.g. "pa"
	TargetLang   string // ISO-639-1 code of the output, e.g. "kn"
	SourceScript script.Script
	TargetScript script.Script
}

// DefaultLanguages returns Punjabi in Gurmukhi to Kannada in Kannada script
func DefaultLanguages() Languages {
	return Languages{
		SourceLang:   "pa",
		TargetLang:   "kn",
		SourceScript: script.Gurmukhi,
		TargetScript: script.Kannada,
	}
}

// TranslationResult is the sentence level output. Every field is populated.
type TranslationResult struct {
	SourceText               string
	TranslatedText           string
	TranslatedInSourceScript string // TranslatedText rewritten in the source script
	Phonetics                string // Latin romanization of TranslatedText
	Audio                    []byte // MP3 of TranslatedText spoken in the target language
}

// WordCard is the study material for one aligned word. A card is either
// complete (Err == nil) or failed, in which case only Index, SourceWord and
// TranslatedWord are set.
type WordCard struct {
	Index                        int // 1-based position in the alignment
	SourceWord                   string
	TranslatedWord               string
	TranslatedWordInSourceScript string
	Phonetics                    string
	Audio                        []byte
	Err                          error
}

// Failed reports whether building the card failed
func (c WordCard) Failed() bool {
	return c.Err != nil
}

// AlignedPair couples the i-th source token with the i-th translated token
type AlignedPair struct {
	Index          int
	SourceWord     string
	TranslatedWord string
}

// Lesson bundles a sentence result with its word cards
type Lesson struct {
	Sentence *TranslationResult
	Cards    []WordCard
}

// FailedCards returns the number of failed cards
func (l *Lesson) FailedCards() int {
	n := 0
	for _, c := range l.Cards {
		if c.Failed() {
			n++
		}
	}
	return n
}
