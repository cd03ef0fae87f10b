// Package trigram implements character-trigram similarity following the
// PostgreSQL pg_trgm convention: each word is lowercased, stripped of
// non-alphanumeric characters, padded with two leading and one trailing
// space, and every 3-character window is collected into a set. Similarity
// is Jaccard over the two sets.
package trigram

import "github.com/rduarte/go-name-matcher/internal/normalizer"

// Set is a set of trigrams.
type Set map[string]struct{}

// Extract returns the trigram set of s. Words shorter than the window still
// contribute trigrams thanks to the padding ("jo" yields "  j", " jo", "jo ").
func Extract(s string) Set {
	set := make(Set)
	for _, word := range normalizer.Words(s) {
		addWord(set, word)
	}
	return set
}

// ExtractWords returns one trigram set per word of s, for word-anchored
// similarity.
func ExtractWords(s string) []Set {
	words := normalizer.Words(s)
	sets := make([]Set, 0, len(words))
	for _, word := range words {
		set := make(Set)
		addWord(set, word)
		sets = append(sets, set)
	}
	return sets
}

func addWord(set Set, word string) {
	padded := "  " + word + " "
	runes := []rune(padded)
	for i := 0; i+3 <= len(runes); i++ {
		set[string(runes[i:i+3])] = struct{}{}
	}
}

// Similarity returns the Jaccard similarity of the trigram sets of a and b,
// in [0,1]. It is symmetric and monotonic in the number of shared trigrams.
// Two empty (or punctuation-only) strings have similarity 0.
func Similarity(a, b string) float64 {
	return setSimilarity(Extract(a), Extract(b))
}

// WordSimilarity returns the best similarity between the whole query and any
// single word of target, useful for partial/substring matches where the
// query names only one component of a longer name. Falls back to plain
// Similarity when that is higher, so the result never punishes full-string
// agreement.
func WordSimilarity(query, target string) float64 {
	best := Similarity(query, target)
	querySet := Extract(query)
	for _, wordSet := range ExtractWords(target) {
		if sim := setSimilarity(querySet, wordSet); sim > best {
			best = sim
		}
	}
	return best
}

func setSimilarity(a, b Set) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shared := 0
	for t := range a {
		if _, ok := b[t]; ok {
			shared++
		}
	}

	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}
