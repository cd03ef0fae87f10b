// Package testing provides utilities and helpers for testing the name matcher.
package testing

import (
	"testing"

	"github.com/rduarte/go-name-matcher/services"
	"github.com/rduarte/go-name-matcher/store"
)

// VariantPerson is one seeded test identity.
type VariantPerson struct {
	FirstName string
	LastName  string
}

// variantPeople covers the spelling phenomena the matcher exists for:
// joined/split compounds, apostrophes, hyphens, and phonetic neighbors.
var variantPeople = []VariantPerson{
	{"Mary", "Ann"},
	{"John", "D'Souza"},
	{"Jean-Pierre", "Dubois"},
	{"Robert", "Johnson"},
	{"Rupert", "Jonson"},
	{"MacDonald", "James"},
	{"Anne-Marie", "Smith"},
	{"Xavier", "Quill"},
}

// NewVariantCorpus builds the canonical small corpus used across matcher and
// search tests. IDs are assigned sequentially from 1 in the order above.
func NewVariantCorpus(t *testing.T) *store.PersonStore {
	t.Helper()
	s := store.NewPersonStore()
	for _, p := range variantPeople {
		s.Add(p.FirstName, p.LastName, "")
	}
	return s
}

// ResultIDs extracts the record IDs of a ranked result list, in order.
func ResultIDs(results []services.ScoredResult) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Record.ID)
	}
	return ids
}

// FindByID returns the scored result for the given record ID, if present.
func FindByID(results []services.ScoredResult, id int64) (services.ScoredResult, bool) {
	for _, r := range results {
		if r.Record.ID == id {
			return r, true
		}
	}
	return services.ScoredResult{}, false
}

// FoundBy reports whether a result was produced by the given strategy tag.
func FoundBy(result services.ScoredResult, tag string) bool {
	for _, t := range result.FoundBy {
		if t == tag {
			return true
		}
	}
	return false
}

