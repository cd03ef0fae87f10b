package matcher

import (
	"sort"

	"github.com/rduarte/go-name-matcher/model"
)

// Candidate references a corpus record matched by one strategy, annotated
// with the strategy's raw signal. Candidates live only for the duration of
// one search call.
type Candidate struct {
	Record     model.NameRecord
	Distance   int     // edit distance; NoDistance for boolean strategies
	Similarity float64 // trigram similarity; 0 for other strategies
}

// NoDistance marks candidates produced by strategies without an edit-distance signal.
const NoDistance = -1

// sortByID orders candidates by ascending record ID for deterministic caps.
func sortByID(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Record.ID < candidates[j].Record.ID
	})
}

// sortByDistance orders candidates by ascending distance, ties by ID.
func sortByDistance(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Record.ID < candidates[j].Record.ID
	})
}

// sortBySimilarity orders candidates by descending similarity, ties by ID.
func sortBySimilarity(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].Record.ID < candidates[j].Record.ID
	})
}

// capped truncates candidates to at most limit entries.
func capped(candidates []Candidate, limit int) []Candidate {
	if limit > 0 && len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
