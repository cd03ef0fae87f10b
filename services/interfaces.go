package services

import (
	"context"

	"github.com/rduarte/go-name-matcher/model"
)

// ScoredResult represents a single record in the ranked search results,
// including the total score accumulated across strategies and the set of
// strategies that found it.
type ScoredResult struct {
	Record     model.NameRecord `json:"record"`
	TotalScore float64          `json:"total_score"`
	FoundBy    []string         `json:"found_by"` // strategy tags in first-match order
}

// SearchResult is the outcome of one combined search invocation.
type SearchResult struct {
	Results []ScoredResult `json:"results"`
	Total   int            `json:"total"`
	Took    int64          `json:"took"`     // milliseconds
	QueryID string         `json:"query_id"` // unique UUID for this search query
}

// Searcher defines the consuming boundary of the matching core: one ranked
// fuzzy search over the corpus. FoundBy is always populated, so explain-mode
// diagnostics come for free.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchResult, error)
}

// Corpus defines the external collaborator that supplies name records.
// The corpus is read-only for the duration of a search; implementations must
// be safe for concurrent readers.
type Corpus interface {
	// LookupExact returns records whose first, last, or full name equals
	// value (case-sensitive).
	LookupExact(ctx context.Context, value string) ([]model.NameRecord, error)

	// ScanPrefix returns records whose first, last, or full name starts with
	// prefix (case-insensitive). Used to bound edit-distance candidate sets.
	ScanPrefix(ctx context.Context, prefix string) ([]model.NameRecord, error)

	// ScanAll returns every record for which keep returns true. A nil keep
	// returns the whole corpus.
	ScanAll(ctx context.Context, keep func(model.NameRecord) bool) ([]model.NameRecord, error)

	// ByID returns the record with the given ID, or a RecordNotFoundError.
	ByID(ctx context.Context, id int64) (model.NameRecord, error)
}
