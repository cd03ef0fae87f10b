package matcher

import (
	"context"
	"strings"

	"github.com/rduarte/go-name-matcher/internal/normalizer"
	"github.com/rduarte/go-name-matcher/internal/strdist"
	"github.com/rduarte/go-name-matcher/model"
	"github.com/rduarte/go-name-matcher/services"
)

// The edit-distance strategies (Levenshtein, the strict phonetic variants,
// and StrictLevenshtein) are all the same shape: collect candidate records,
// apply an optional equality gate, and keep those whose distance to the
// query stays within a per-comparison bound. gatedFilter is that one shape,
// parameterized; the named strategies only differ in the gate, the bound
// policy, and the candidate source.
type gatedFilter struct {
	// gate filters records before any distance work; nil admits everything.
	gate func(model.NameRecord) bool

	// bound returns the distance cutoff for one query/record comparison.
	bound func(q Query, rec model.NameRecord) int

	// source supplies candidate records; nil means a full corpus scan.
	source func(ctx context.Context, corpus services.Corpus, q Query) ([]model.NameRecord, error)

	limit int
}

func (f gatedFilter) run(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
	var records []model.NameRecord
	var err error

	if f.source != nil {
		records, err = f.source(ctx, corpus, q)
	} else {
		records, err = corpus.ScanAll(ctx, f.gate)
	}
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(records))
	for _, rec := range records {
		// source-based filters still need the gate applied here
		if f.source != nil && f.gate != nil && !f.gate(rec) {
			continue
		}

		bound := f.bound(q, rec)
		if dist := recordDistance(q, rec, bound); dist <= bound {
			candidates = append(candidates, Candidate{Record: rec, Distance: dist})
		}
	}

	sortByDistance(candidates)
	return capped(candidates, f.limit), nil
}

// recordDistance returns the smallest edit distance between the query and
// the record's comparison forms: full name (raw and whitespace-stripped),
// first name, and last name, all lowercased. Distances above maxDistance
// come back as maxDistance+1.
func recordDistance(q Query, rec model.NameRecord, maxDistance int) int {
	best := maxDistance + 1

	update := func(a, b string) {
		if b == "" {
			return
		}
		if d := strdist.LevenshteinWithLimit(a, b, maxDistance); d < best {
			best = d
		}
	}

	update(q.Lower, strings.ToLower(rec.FullName))
	update(q.Compact, normalizer.Normalize(rec.FullName))
	update(q.Lower, strings.ToLower(rec.FirstName))
	update(q.Lower, strings.ToLower(rec.LastName))

	return best
}
