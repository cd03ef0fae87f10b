// Package normalizer produces the canonical comparison forms of a name.
// All functions are deterministic, side-effect-free, and idempotent; an
// empty input normalizes to an empty output rather than an error.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Normalize lowercases s and removes all whitespace, unifying spellings like
// "Mary Ann" and "MaryAnn".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// StripApostrophes is Normalize with literal apostrophes removed as well,
// unifying spellings like "D'Souza" and "DSouza".
func StripApostrophes(s string) string {
	return strings.ReplaceAll(Normalize(s), "'", "")
}

// Alphanumeric lowercases s and removes every non-alphanumeric rune. This is
// the most aggressive form: it additionally unifies hyphenated names like
// "Jean-Pierre" and "JeanPierre".
func Alphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Words splits a name into lowercased word tokens on runs of
// non-alphanumeric characters. Unlike a general-text tokenizer it never
// splits on case changes: "MacDonald" stays one word.
func Words(s string) []string {
	split := nonAlphanumericRegex.Split(strings.ToLower(s), -1)

	words := make([]string, 0, len(split))
	for _, w := range split {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
