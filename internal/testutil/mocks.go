package testutil

import (
	"context"
	"sync"

	"codeberg.org/snonux/kannadacards/internal/script"
)

// AudioMarker is the fixed buffer MockSynthesizer returns by default
var AudioMarker = []byte{0xAA, 0xBB, 0xCC, 0xDD}

// callLog records calls and is safe for concurrent use
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

// Calls returns a copy of the recorded call inputs
func (c *callLog) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// CallCount returns the number of recorded calls
func (c *callLog) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// MockTranslator mocks translation service. Unknown text is returned unchanged.
type MockTranslator struct {
	callLog
	Translations map[string]string
	Errors       map[string]error
}

// Name returns the mock name
func (m *MockTranslator) Name() string { return "mock" }

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	m.record(text)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	return text, nil
}

// MockConverter mocks script conversion. Unknown text is returned unchanged.
type MockConverter struct {
	callLog
	Results map[string]string
	Errors  map[string]error
}

// Name returns the mock name
func (m *MockConverter) Name() string { return "mock" }

// Convert mocks converting text between scripts
func (m *MockConverter) Convert(ctx context.Context, text string, from, to script.Script) (string, error) {
	m.record(text)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if result, ok := m.Results[text]; ok {
		return result, nil
	}
	return text, nil
}

// MockTransliterator mocks phonetic transliteration. Unknown text is
// returned unchanged.
type MockTransliterator struct {
	callLog
	Results map[string]string
	Errors  map[string]error
}

// Name returns the mock name
func (m *MockTransliterator) Name() string { return "mock" }

// ToPhonetics mocks romanizing text
func (m *MockTransliterator) ToPhonetics(ctx context.Context, text string, from script.Script) (string, error) {
	m.record(text)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if result, ok := m.Results[text]; ok {
		return result, nil
	}
	return text, nil
}

// MockSynthesizer mocks a text-to-speech provider. Unknown text yields AudioMarker.
type MockSynthesizer struct {
	callLog
	Audio        map[string][]byte
	Errors       map[string]error
	AvailableErr error
}

// Name returns the mock name
func (m *MockSynthesizer) Name() string { return "mock" }

// IsAvailable returns AvailableErr
func (m *MockSynthesizer) IsAvailable() error { return m.AvailableErr }

// Synthesize mocks generating audio
func (m *MockSynthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	m.record(text)

	if err, ok := m.Errors[text]; ok {
		return nil, err
	}
	if data, ok := m.Audio[text]; ok {
		return data, nil
	}
	return append([]byte(nil), AudioMarker...), nil
}
