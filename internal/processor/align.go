package processor

import "strings"

// Tokenize splits s on runs of Unicode whitespace. Leading and trailing
// whitespace is ignored and tokens are never empty.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// Align zips the tokens of source and translated by position, truncated to
// the shorter sequence. This is a naive alignment: word order differences
// between the languages are not accounted for.
func Align(source, translated string) []AlignedPair {
	src := Tokenize(source)
	dst := Tokenize(translated)

	n := min(len(src), len(dst))
	pairs := make([]AlignedPair, n)
	for i := 0; i < n; i++ {
		pairs[i] = AlignedPair{
			Index:          i + 1,
			SourceWord:     src[i],
			TranslatedWord: dst[i],
		}
	}
	return pairs
}
