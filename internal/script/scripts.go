package script

import (
	"fmt"
	"strings"
	"unicode"
)

// Script names a writing system. Values follow Aksharamukha naming.
type Script string

const (
	Devanagari Script = "Devanagari"
	Bengali    Script = "Bengali"
	Gurmukhi   Script = "Gurmukhi"
	Gujarati   Script = "Gujarati"
	Oriya      Script = "Oriya"
	Tamil      Script = "Tamil"
	Telugu     Script = "Telugu"
	Kannada    Script = "Kannada"
	Malayalam  Script = "Malayalam"
)

// block describes where a script lives in Unicode. All supported scripts
// use the same 128 code point layout inherited from ISCII.
type block struct {
	base  rune
	table *unicode.RangeTable
}

var blocks = map[Script]block{
	Devanagari: {0x0900, unicode.Devanagari},
	Bengali:    {0x0980, unicode.Bengali},
	Gurmukhi:   {0x0A00, unicode.Gurmukhi},
	Gujarati:   {0x0A80, unicode.Gujarati},
	Oriya:      {0x0B00, unicode.Oriya},
	Tamil:      {0x0B80, unicode.Tamil},
	Telugu:     {0x0C00, unicode.Telugu},
	Kannada:    {0x0C80, unicode.Kannada},
	Malayalam:  {0x0D00, unicode.Malayalam},
}

// Supported returns all script names the in-process converter handles
func Supported() []Script {
	return []Script{Devanagari, Bengali, Gurmukhi, Gujarati, Oriya, Tamil, Telugu, Kannada, Malayalam}
}

// ParseScript resolves a case-insensitive script name
func ParseScript(name string) (Script, error) {
	for _, s := range Supported() {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported script: %q", name)
}

// Base returns the first code point of the script's block and whether the
// script is known.
func Base(s Script) (rune, bool) {
	b, ok := blocks[s]
	return b.base, ok
}

// Offset returns the position of r inside the block of s, or -1 when r is
// not an assigned letter of that script.
func Offset(s Script, r rune) int {
	b, ok := blocks[s]
	if !ok || r < b.base || r >= b.base+0x80 || !unicode.Is(b.table, r) {
		return -1
	}
	return int(r - b.base)
}

// Contains reports whether text has at least one letter of the script
func Contains(s Script, text string) bool {
	for _, r := range text {
		if Offset(s, r) >= 0 {
			return true
		}
	}
	return false
}
