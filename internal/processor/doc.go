// Package processor turns source-language text into a lesson: a sentence
// level result (translation, back-transliteration, phonetics, audio) and one
// flashcard per positionally aligned word. It has no presentation concerns;
// the CLI and the Telegram bot render its results.
package processor
