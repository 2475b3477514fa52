package batch

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Entry is one sentence of a batch file with an optional known translation
type Entry struct {
	Line        int // 1-based line number in the batch file
	Source      string
	Translation string // Empty when the sentence still needs translating
}

// ReadBatchFile reads sentences from a file, one per line.
// Supported line formats:
// - Source sentence only: "ਸਤ ਸ੍ਰੀ ਅਕਾਲ" (will be translated)
// - With translation: "ਹੈਲੋ = ಹಲೋ" (translation is used as given)
// Blank lines, lines starting with '#' and lines without a source sentence are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return parseEntries(content)
}

func parseEntries(content []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Line: lineNo, Source: line}
		if source, translation, ok := strings.Cut(line, "="); ok {
			entry.Source = strings.TrimSpace(source)
			entry.Translation = strings.TrimSpace(translation)
		}
		if entry.Source == "" {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan batch file: %w", err)
	}

	return entries, nil
}
