package matcher

import (
	"strings"

	"github.com/rduarte/go-name-matcher/internal/normalizer"
	"github.com/rduarte/go-name-matcher/internal/phonetic"
)

// Query holds a raw search string together with every derived comparison
// form the strategies need. Forms are computed once per search so the
// strategies stay pure functions of (corpus, query, settings).
type Query struct {
	Raw          string
	Lower        string   // lowercased, trimmed
	Compact      string   // lowercased, all whitespace removed
	NoApostrophe string   // Compact with apostrophes removed
	Alnum        string   // lowercased, non-alphanumeric removed
	CompactLen   int      // rune length of Compact
	Soundex      []string // soundex codes of the query and its compact form
	MetaphoneAll []string // primary + alternate double metaphone keys
	MetaphonePri []string // primary double metaphone keys only
}

// NewQuery derives all comparison forms of raw.
func NewQuery(raw string) Query {
	trimmed := strings.TrimSpace(raw)
	compact := normalizer.Normalize(trimmed)

	return Query{
		Raw:          trimmed,
		Lower:        strings.ToLower(trimmed),
		Compact:      compact,
		NoApostrophe: normalizer.StripApostrophes(trimmed),
		Alnum:        normalizer.Alphanumeric(trimmed),
		CompactLen:   len([]rune(compact)),
		Soundex:      phonetic.SoundexCodes(trimmed, compact),
		MetaphoneAll: phonetic.MetaphoneKeys(trimmed, compact),
		MetaphonePri: phonetic.PrimaryKeys(trimmed, compact),
	}
}

// Empty reports whether the query carries no searchable content.
func (q Query) Empty() bool {
	return q.Compact == ""
}
