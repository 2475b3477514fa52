package phonetic

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"codeberg.org/snonux/kannadacards/internal"
	"codeberg.org/snonux/kannadacards/internal/script"
)

// Block offsets shared by all Brahmic scripts
const (
	offNukta  = 0x3C
	offVirama = 0x4D
)

// Scripts whose everyday orthography separates short and long e and o
var longMarked = map[script.Script]bool{
	script.Tamil: true, script.Telugu: true, script.Kannada: true, script.Malayalam: true,
}

// Consonant romanizations without the inherent vowel
var consonants = map[int]string{
	0x15: "k", 0x16: "kh", 0x17: "g", 0x18: "gh", 0x19: "~N",
	0x1A: "ch", 0x1B: "Ch", 0x1C: "j", 0x1D: "jh", 0x1E: "~n",
	0x1F: "T", 0x20: "Th", 0x21: "D", 0x22: "Dh", 0x23: "N",
	0x24: "t", 0x25: "th", 0x26: "d", 0x27: "dh", 0x28: "n", 0x29: "n",
	0x2A: "p", 0x2B: "ph", 0x2C: "b", 0x2D: "bh", 0x2E: "m",
	0x2F: "y", 0x30: "r", 0x31: "R", 0x32: "l", 0x33: "L", 0x34: "zh", 0x35: "v",
	0x36: "sh", 0x37: "Sh", 0x38: "s", 0x39: "h",
}

// Consonant plus nukta, keyed by the plain consonant offset
var nuktaForms = map[int]string{
	0x15: "q", 0x16: "K", 0x17: "G", 0x1C: "z",
	0x21: ".D", 0x22: ".Dh", 0x2B: "f", 0x2F: "Y",
}

// Precomposed letters that only some scripts carry
var scriptConsonants = map[script.Script]map[int]string{
	script.Devanagari: {0x58: "q", 0x59: "K", 0x5A: "G", 0x5B: "z", 0x5C: ".D", 0x5D: ".Dh", 0x5E: "f", 0x5F: "Y"},
	script.Bengali:    {0x5C: ".D", 0x5D: ".Dh", 0x5F: "Y"},
	script.Oriya:      {0x5C: ".D", 0x5D: ".Dh", 0x5F: "Y"},
	script.Gurmukhi:   {0x59: "K", 0x5A: "G", 0x5B: "z", 0x5C: ".D", 0x5E: "f", 0x72: "", 0x73: ""},
	script.Kannada:    {0x5E: "zh"},
}

// Independent vowels
var vowels = map[int]string{
	0x05: "a", 0x06: "A", 0x07: "i", 0x08: "I", 0x09: "u", 0x0A: "U",
	0x0B: "RRi", 0x0C: "LLi", 0x0D: "e", 0x0E: "e", 0x0F: "E", 0x10: "ai",
	0x11: "o", 0x12: "o", 0x13: "O", 0x14: "au", 0x60: "RRI", 0x61: "LLI",
}

// Dependent vowel signs
var vowelSigns = map[int]string{
	0x3E: "A", 0x3F: "i", 0x40: "I", 0x41: "u", 0x42: "U", 0x43: "RRi", 0x44: "RRI",
	0x45: "e", 0x46: "e", 0x47: "E", 0x48: "ai", 0x49: "o", 0x4A: "o", 0x4B: "O", 0x4C: "au",
	0x62: "LLi", 0x63: "LLI",
}

// Signs that stand on their own
var marks = map[int]string{
	0x01: ".N", 0x02: "M", 0x03: "H", 0x3D: ".a", 0x50: "OM",
}

var scriptMarks = map[script.Script]map[int]string{
	script.Gurmukhi: {0x70: "M", 0x74: "OM", 0x75: "y"},
	script.Kannada:  {0x5D: "n"},
}

// ITRANS romanizes Brahmic text with the ITRANS scheme. Scripts without a
// short e or o write their single e and o as "e" and "o"; scripts that
// distinguish them write the long forms as "E" and "O".
type ITRANS struct{}

// NewITRANS creates the in-process ITRANS romanizer
func NewITRANS() *ITRANS {
	return &ITRANS{}
}

// Name returns the transliterator name
func (t *ITRANS) Name() string {
	return "itrans"
}

// ToPhonetics romanizes text written in script from
func (t *ITRANS) ToPhonetics(ctx context.Context, text string, from script.Script) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &internal.EmptyInputError{Field: "text"}
	}
	if _, ok := script.Base(from); !ok {
		return "", internal.NewProviderError(t.Name(), "romanize", fmt.Errorf("unsupported script: %s", from))
	}
	if err := ctx.Err(); err != nil {
		return "", internal.NewProviderError(t.Name(), "romanize", err)
	}

	r := &romanizer{from: from, longMarked: longMarked[from]}
	return r.run([]rune(text)), nil
}

type romanizer struct {
	from       script.Script
	longMarked bool
	out        strings.Builder
}

func (r *romanizer) offset(runes []rune, i int) int {
	if i >= len(runes) {
		return -1
	}
	return script.Offset(r.from, runes[i])
}

func (r *romanizer) consonant(off int) (string, bool) {
	if c, ok := consonants[off]; ok {
		return c, true
	}
	c, ok := scriptConsonants[r.from][off]
	return c, ok
}

func (r *romanizer) vowel(table map[int]string, off int) (string, bool) {
	v, ok := table[off]
	if !ok {
		return "", false
	}
	if !r.longMarked {
		switch v {
		case "E":
			v = "e"
		case "O":
			v = "o"
		}
	}
	return v, true
}

func (r *romanizer) run(runes []rune) string {
	geminate := false
	for i := 0; i < len(runes); i++ {
		off := r.offset(runes, i)
		if off < 0 {
			r.writeOther(runes[i])
			continue
		}

		if c, ok := r.consonant(off); ok {
			if r.offset(runes, i+1) == offNukta {
				if n, ok := nuktaForms[off]; ok {
					c = n
				}
				i++
			}
			if geminate {
				r.out.WriteString(geminatePrefix(c))
				geminate = false
			}
			r.out.WriteString(c)

			next := r.offset(runes, i+1)
			if next == offVirama {
				i++
				continue
			}
			if sign, ok := r.vowel(vowelSigns, next); ok {
				r.out.WriteString(sign)
				i++
				continue
			}
			r.out.WriteString("a")
			continue
		}

		if v, ok := r.vowel(vowels, off); ok {
			r.out.WriteString(v)
			continue
		}
		if m, ok := marks[off]; ok {
			r.out.WriteString(m)
			continue
		}
		if m, ok := scriptMarks[r.from][off]; ok {
			r.out.WriteString(m)
			continue
		}
		if off >= 0x66 && off <= 0x6F {
			r.out.WriteByte(byte('0' + off - 0x66))
			continue
		}
		if r.from == script.Gurmukhi && off == 0x71 {
			geminate = true
			continue
		}
		// Remaining signs (stray nukta, length marks) carry no sound of their own
	}
	return r.out.String()
}

func (r *romanizer) writeOther(c rune) {
	switch c {
	case '।':
		r.out.WriteString("|")
	case '॥':
		r.out.WriteString("||")
	case '\u200c', '\u200d':
	default:
		r.out.WriteRune(c)
	}
}

// geminatePrefix returns the letters that double consonant c, dropping
// aspiration and ITRANS punctuation.
func geminatePrefix(c string) string {
	p := strings.TrimRightFunc(c, func(r rune) bool { return r == 'h' && len(c) > 1 })
	p = strings.TrimLeftFunc(p, func(r rune) bool { return !unicode.IsLetter(r) })
	if p == "" {
		return c
	}
	return p
}
