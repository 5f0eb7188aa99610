// Package glyph checks which runes a TrueType font can draw and folds
// text down to those runes.
package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/font"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Replacement is substituted for runes that cannot be folded to
// anything the font covers.
const Replacement = '?'

// ErrEmptyFont is returned by Parse for empty font data.
var ErrEmptyFont = errors.New("glyph: empty font data")

// Coverage answers glyph lookups for one font.
// It is safe for concurrent use.
type Coverage struct {
	font *font.Font
}

// Parse reads the character map of a TrueType/OpenType font.
func Parse(data []byte) (*Coverage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &Coverage{font: face.Font}, nil
}

// Has reports whether the font maps r to a glyph.
func (c *Coverage) Has(r rune) bool {
	_, ok := c.font.NominalGlyph(r)
	return ok
}

// ASCII reports whether r is printable ASCII. It stands in for a
// coverage lookup when no font data is at hand.
func ASCII(r rune) bool {
	return r >= 0x20 && r < 0x7F
}

// folder decomposes compatibility characters and drops combining marks:
// "é" becomes "e", the "ﬁ" ligature becomes "fi".
func folder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
}

// Fold returns s with every rune that has rejects replaced by its
// decomposed form, or by Replacement when the decomposition still
// contains runes has rejects.
func Fold(s string, has func(rune) bool) string {
	var (
		b strings.Builder
		t transform.Transformer
	)
	b.Grow(len(s))
	for _, r := range s {
		if has(r) {
			b.WriteRune(r)
			continue
		}
		if t == nil {
			t = folder()
		}
		t.Reset()
		alt, _, err := transform.String(t, string(r))
		if err != nil || alt == "" || !all(alt, has) {
			b.WriteRune(Replacement)
			continue
		}
		b.WriteString(alt)
	}
	return b.String()
}

func all(s string, has func(rune) bool) bool {
	for _, r := range s {
		if !has(r) {
			return false
		}
	}
	return true
}
