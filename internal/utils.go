package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
	"unicode"
)

// GenerateLessonID creates a unique ID for a lesson based on timestamp and source text
// Format: epochMillis_md5(text)[:8]
func GenerateLessonID(sourceText string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(sourceText))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}

// isAlphaNumeric accepts letters and digits of any script, including the
// combining vowel signs Gurmukhi and Kannada words are built from.
func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
