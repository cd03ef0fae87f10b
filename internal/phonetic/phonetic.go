// Package phonetic exposes the phonetic encodings used by the matcher
// strategies. The codes themselves come from github.com/antzucaro/matchr,
// which follows the reference Soundex and Double Metaphone algorithms; this
// package adds the name-shaped helpers (per-field code sets) on top.
//
// Codes are only ever compared for equality, so non-ASCII input degrades
// identically on both sides of a comparison.
package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Soundex returns the 4-character reference Soundex code of s, or "" for
// input with no encodable letters.
func Soundex(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return matchr.Soundex(s)
}

// DoubleMetaphone returns the primary and alternate Double Metaphone codes
// of s. The alternate is "" when the name admits no alternate pronunciation.
func DoubleMetaphone(s string) (primary, alternate string) {
	if strings.TrimSpace(s) == "" {
		return "", ""
	}
	return matchr.DoubleMetaphone(s)
}

// Metaphone returns the primary Double Metaphone code of s.
func Metaphone(s string) string {
	primary, _ := DoubleMetaphone(s)
	return primary
}

// SoundexCodes returns the distinct non-empty Soundex codes of the given
// name forms. For a record the forms are first name, last name, and full
// name with spaces removed, mirroring how each field is matched
// independently.
func SoundexCodes(forms ...string) []string {
	return distinctCodes(Soundex, forms)
}

// MetaphoneKeys returns the distinct non-empty Double Metaphone codes
// (primary and alternate) of the given name forms.
func MetaphoneKeys(forms ...string) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0, 2*len(forms))
	for _, form := range forms {
		primary, alternate := DoubleMetaphone(form)
		for _, code := range []string{primary, alternate} {
			if code == "" {
				continue
			}
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			keys = append(keys, code)
		}
	}
	return keys
}

// PrimaryKeys returns the distinct non-empty primary Double Metaphone codes
// of the given name forms.
func PrimaryKeys(forms ...string) []string {
	return distinctCodes(Metaphone, forms)
}

// AnyCodeMatches reports whether the two code sets intersect.
func AnyCodeMatches(a, b []string) bool {
	for _, codeA := range a {
		for _, codeB := range b {
			if codeA == codeB {
				return true
			}
		}
	}
	return false
}

func distinctCodes(encode func(string) string, forms []string) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0, len(forms))
	for _, form := range forms {
		code := encode(form)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
