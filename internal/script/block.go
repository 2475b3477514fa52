package script

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"codeberg.org/snonux/kannadacards/internal"
)

// Fallback sequences are written as offsets into the target block. Values
// of 0x80 and above are absolute code points shared by all scripts.
type sequence []rune

// offsetFallbacks are tried, in order, when the same offset is not assigned
// in the target script. An empty sequence drops the character.
var offsetFallbacks = map[int][]sequence{
	0x00: {{0x01}, {0x02}},
	0x01: {{0x02}},
	0x02: {{0x01}},
	0x0B: {{0x30, 0x3F}},
	0x0C: {{0x32, 0x3F}},
	0x0D: {{0x0F}},
	0x0E: {{0x0F}},
	0x0F: {{0x0E}},
	0x11: {{0x13}},
	0x12: {{0x13}},
	0x13: {{0x12}},
	0x16: {{0x15}},
	0x17: {{0x15}},
	0x18: {{0x15}},
	0x1B: {{0x1A}},
	0x1D: {{0x1C}},
	0x20: {{0x1F}},
	0x21: {{0x1F}},
	0x22: {{0x1F}},
	0x25: {{0x24}},
	0x26: {{0x24}},
	0x27: {{0x24}},
	0x29: {{0x28}},
	0x2B: {{0x2A}},
	0x2C: {{0x2A}},
	0x2D: {{0x2A}},
	0x31: {{0x30}},
	0x33: {{0x32}},
	0x34: {{0x33}, {0x32}},
	0x36: {{0x38}},
	0x37: {{0x36}, {0x38}},
	0x3C: {{}},
	0x3D: {{0x093D}},
	0x43: {{0x4D, 0x30, 0x3F}},
	0x44: {{0x4D, 0x30, 0x40}},
	0x45: {{0x47}},
	0x46: {{0x47}},
	0x47: {{0x46}},
	0x49: {{0x4B}},
	0x4A: {{0x4B}},
	0x4B: {{0x4A}},
	0x55: {{}},
	0x56: {{}},
	0x57: {{}},
	0x60: {{0x30, 0x40}},
	0x61: {{0x32, 0x40}},
	0x62: {{0x4D, 0x32, 0x3F}},
	0x63: {{0x4D, 0x32, 0x40}},
}

// sourceFallbacks cover code points whose meaning differs per script, so
// the bare offset cannot be reused. They are consulted before anything else.
var sourceFallbacks = map[rune][]sequence{
	// Devanagari nukta consonants
	0x0958: {{0x15, 0x3C}, {0x15}},
	0x0959: {{0x16, 0x3C}, {0x16}},
	0x095A: {{0x17, 0x3C}, {0x17}},
	0x095B: {{0x1C, 0x3C}, {0x1C}},
	0x095C: {{0x21, 0x3C}, {0x21}},
	0x095D: {{0x22, 0x3C}, {0x22}},
	0x095E: {{0x2B, 0x3C}, {0x2B}},
	0x095F: {{0x2F, 0x3C}, {0x2F}},
	0x0950: {{0x13, 0x02}},
	// Gurmukhi
	0x0A59: {{0x16, 0x3C}, {0x16}},
	0x0A5A: {{0x17, 0x3C}, {0x17}},
	0x0A5B: {{0x1C, 0x3C}, {0x1C}},
	0x0A5C: {{0x21, 0x3C}, {0x21}},
	0x0A5E: {{0x2B, 0x3C}, {0x2B}},
	0x0A70: {{0x02}},
	0x0A71: {{}},
	0x0A72: {{0x07}},
	0x0A73: {{0x09}},
	0x0A74: {{0x13, 0x02}},
	0x0A75: {{}},
	// Kannada
	0x0CDD: {{0x28, 0x4D}},
	0x0CDE: {{0x34}, {0x33}, {0x32}},
	0x0CF1: {{0x03}},
	0x0CF2: {{0x03}},
	// Malayalam chillu letters
	0x0D7A: {{0x23, 0x4D}},
	0x0D7B: {{0x28, 0x4D}},
	0x0D7C: {{0x30, 0x4D}},
	0x0D7D: {{0x32, 0x4D}},
	0x0D7E: {{0x33, 0x4D}},
}

// BlockConverter converts between Brahmic scripts by code point offset.
// It is deterministic and needs no network access.
type BlockConverter struct{}

// NewBlockConverter creates an in-process converter
func NewBlockConverter() *BlockConverter {
	return &BlockConverter{}
}

// Name returns the converter name
func (c *BlockConverter) Name() string {
	return "unicode"
}

// Convert maps every letter of the from script to the to script. Runes
// outside the source block pass through unchanged.
func (c *BlockConverter) Convert(ctx context.Context, text string, from, to Script) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	if _, ok := blocks[from]; !ok {
		return "", internal.NewProviderError(c.Name(), "convert", fmt.Errorf("unsupported source script: %q", from))
	}
	dst, ok := blocks[to]
	if !ok {
		return "", internal.NewProviderError(c.Name(), "convert", fmt.Errorf("unsupported target script: %q", to))
	}
	if from == to {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		off := Offset(from, r)
		if off < 0 {
			b.WriteRune(r)
			continue
		}

		if seqs, ok := sourceFallbacks[r]; ok {
			writeFirst(&b, r, seqs, dst)
			continue
		}

		// Offsets 0x58-0x5F and 0x70 upward are script specific
		if (off < 0x58 || (off >= 0x60 && off < 0x70)) && assigned(dst, dst.base+rune(off)) {
			b.WriteRune(dst.base + rune(off))
			continue
		}

		writeFirst(&b, r, offsetFallbacks[off], dst)
	}

	return b.String(), nil
}

// writeFirst writes the first fallback sequence fully representable in dst,
// or the original rune when none is.
func writeFirst(b *strings.Builder, r rune, seqs []sequence, dst block) {
	for _, seq := range seqs {
		runes, ok := resolve(seq, dst)
		if ok {
			for _, out := range runes {
				b.WriteRune(out)
			}
			return
		}
	}
	b.WriteRune(r)
}

func resolve(seq sequence, dst block) ([]rune, bool) {
	runes := make([]rune, 0, len(seq))
	for _, v := range seq {
		if v >= 0x80 {
			runes = append(runes, v)
			continue
		}
		cp := dst.base + v
		if !assigned(dst, cp) {
			return nil, false
		}
		runes = append(runes, cp)
	}
	return runes, true
}

func assigned(b block, r rune) bool {
	return unicode.Is(b.table, r)
}
