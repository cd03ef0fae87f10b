// Package matcher implements the independent retrieval strategies of the
// combined name search. Each strategy is a pure function of (corpus, query,
// settings) producing match candidates; the score aggregator in
// internal/search folds their outputs into one ranked list.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rduarte/go-name-matcher/config"
	interrors "github.com/rduarte/go-name-matcher/internal/errors"
	"github.com/rduarte/go-name-matcher/internal/normalizer"
	"github.com/rduarte/go-name-matcher/internal/phonetic"
	"github.com/rduarte/go-name-matcher/internal/strdist"
	"github.com/rduarte/go-name-matcher/internal/trigram"
	"github.com/rduarte/go-name-matcher/model"
	"github.com/rduarte/go-name-matcher/services"
)

// Strategy tags. These appear in ScoredResult.FoundBy, so they are part of
// the consuming contract.
const (
	TagExact                 = "Exact"
	TagWildcard              = "Wildcard"
	TagNormalized            = "Normalized"
	TagSoundex               = "Soundex"
	TagLevenshtein           = "Levenshtein"
	TagStrictSoundex         = "StrictSoundex"
	TagStrictLevenshtein     = "StrictLevenshtein"
	TagTrigram               = "Trigram"
	TagStrictMetaphone       = "StrictMetaphone"
	TagStrictDoubleMetaphone = "StrictDoubleMetaphone"
)

// Strategy is one independent retrieval algorithm.
type Strategy struct {
	// Tag labels the strategy's candidates in FoundBy.
	Tag string

	// FallbackTag names the simpler sibling to try when this strategy
	// fails; "" means no fallback. Wildcard is the universal fallback, the
	// strict variants fall back to their base sibling first.
	FallbackTag string

	// Run queries the corpus and returns this strategy's candidates.
	Run func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error)

	// Contribution returns the points a candidate adds to its record's
	// total score under the given weights.
	Contribution func(c Candidate, weights config.StrategyWeights) float64
}

// All builds the full strategy set for the given settings.
func All(settings *config.SearchSettings) []Strategy {
	return []Strategy{
		exactStrategy(settings),
		normalizedStrategy(settings),
		wildcardStrategy(settings),
		soundexStrategy(settings),
		levenshteinStrategy(settings),
		strictSoundexStrategy(settings),
		strictLevenshteinStrategy(settings),
		trigramStrategy(settings),
		strictMetaphoneStrategy(settings),
		strictDoubleMetaphoneStrategy(settings),
	}
}

func flat(weight func(config.StrategyWeights) float64) func(Candidate, config.StrategyWeights) float64 {
	return func(_ Candidate, w config.StrategyWeights) float64 {
		return weight(w)
	}
}

// exactStrategy matches records whose first, last, or full name equals the
// raw query, case-sensitively.
func exactStrategy(settings *config.SearchSettings) Strategy {
	limit := settings.ExactCap
	return Strategy{
		Tag:         TagExact,
		FallbackTag: TagWildcard,
		Run: func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
			records, err := corpus.LookupExact(ctx, q.Raw)
			if err != nil {
				return nil, wrapCorpusErr("LookupExact", err)
			}
			return booleanCandidates(records, limit), nil
		},
		Contribution: flat(func(w config.StrategyWeights) float64 { return w.Exact }),
	}
}

// wildcardStrategy matches records containing the query as a
// case-insensitive substring of any name field; both sides are also
// compared with apostrophes stripped, so "DSouza" still finds "D'Souza".
// It is the universal fallback and the weakest signal.
func wildcardStrategy(settings *config.SearchSettings) Strategy {
	limit := settings.StrategyCap
	return Strategy{
		Tag: TagWildcard,
		Run: func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
			records, err := corpus.ScanAll(ctx, func(rec model.NameRecord) bool {
				return fieldContains(rec, q.Lower) || fieldContains(rec, q.NoApostrophe)
			})
			if err != nil {
				return nil, wrapCorpusErr("ScanAll", err)
			}
			return booleanCandidates(records, limit), nil
		},
		Contribution: flat(func(w config.StrategyWeights) float64 { return w.Wildcard }),
	}
}

// normalizedStrategy matches on canonicalized name forms: whitespace
// stripped, apostrophes stripped, and alphanumeric-only. The last form is
// what unifies "Jean-Pierre" with "JeanPierre".
func normalizedStrategy(settings *config.SearchSettings) Strategy {
	limit := settings.StrategyCap
	return Strategy{
		Tag:         TagNormalized,
		FallbackTag: TagWildcard,
		Run: func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
			records, err := corpus.ScanAll(ctx, func(rec model.NameRecord) bool {
				for _, field := range nameFields(rec) {
					if normalizer.Normalize(field) == q.Compact ||
						normalizer.StripApostrophes(field) == q.NoApostrophe ||
						normalizer.Alphanumeric(field) == q.Alnum {
						return true
					}
				}
				return false
			})
			if err != nil {
				return nil, wrapCorpusErr("ScanAll", err)
			}
			return booleanCandidates(records, limit), nil
		},
		Contribution: flat(func(w config.StrategyWeights) float64 { return w.Normalized }),
	}
}

// soundexStrategy matches records sharing a Soundex code with the query on
// any name form.
func soundexStrategy(settings *config.SearchSettings) Strategy {
	limit := settings.StrategyCap
	return Strategy{
		Tag:         TagSoundex,
		FallbackTag: TagWildcard,
		Run: func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
			records, err := corpus.ScanAll(ctx, soundexGate(q))
			if err != nil {
				return nil, wrapCorpusErr("ScanAll", err)
			}
			return booleanCandidates(records, limit), nil
		},
		Contribution: flat(func(w config.StrategyWeights) float64 { return w.Soundex }),
	}
}

// levenshteinStrategy compares the query against records sharing a short
// prefix, keeping those within the adaptive length-proportional bound. Its
// contribution decays with distance: weight / (distance + 1).
func levenshteinStrategy(settings *config.SearchSettings) Strategy {
	maxDistance := settings.MaxDistance
	prefixLen := settings.LevenshteinPrefixLen
	filter := gatedFilter{
		bound: func(q Query, rec model.NameRecord) int {
			candidateLen := len([]rune(rec.FullName))
			return strdist.AdaptiveBound(q.CompactLen, candidateLen, maxDistance)
		},
		source: func(ctx context.Context, corpus services.Corpus, q Query) ([]model.NameRecord, error) {
			prefix := q.Lower
			if runes := []rune(prefix); len(runes) > prefixLen {
				prefix = string(runes[:prefixLen])
			}
			return corpus.ScanPrefix(ctx, prefix)
		},
		limit: settings.StrategyCap,
	}
	return Strategy{
		Tag:         TagLevenshtein,
		FallbackTag: TagWildcard,
		Run: func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
			candidates, err := filter.run(ctx, corpus, q)
			if err != nil {
				return nil, wrapCorpusErr("ScanPrefix", err)
			}
			return candidates, nil
		},
		Contribution: func(c Candidate, w config.StrategyWeights) float64 {
			return w.Levenshtein / float64(c.Distance+1)
		},
	}
}

// strictSoundexStrategy requires both a Soundex match and an edit distance
// within the strict bound.
func strictSoundexStrategy(settings *config.SearchSettings) Strategy {
	strategy := strictGatedStrategy(settings, TagStrictSoundex, TagSoundex, soundexGateFactory)
	strategy.Contribution = flat(func(w config.StrategyWeights) float64 { return w.StrictSoundex })
	return strategy
}

// strictLevenshteinStrategy keeps records within the strict bound with no
// phonetic gate.
func strictLevenshteinStrategy(settings *config.SearchSettings) Strategy {
	strategy := strictGatedStrategy(settings, TagStrictLevenshtein, TagLevenshtein, nil)
	strategy.Contribution = flat(func(w config.StrategyWeights) float64 { return w.StrictLevenshtein })
	return strategy
}

// strictMetaphoneStrategy requires primary Double Metaphone key equality
// plus the strict distance bound.
func strictMetaphoneStrategy(settings *config.SearchSettings) Strategy {
	strategy := strictGatedStrategy(settings, TagStrictMetaphone, TagSoundex, func(q Query) func(model.NameRecord) bool {
		return func(rec model.NameRecord) bool {
			return phonetic.AnyCodeMatches(q.MetaphonePri, phonetic.PrimaryKeys(recordForms(rec)...))
		}
	})
	strategy.Contribution = flat(func(w config.StrategyWeights) float64 { return w.StrictMetaphone })
	return strategy
}

// strictDoubleMetaphoneStrategy accepts a match on either the primary or
// the alternate Double Metaphone key, covering ambiguous pronunciations,
// plus the strict distance bound.
func strictDoubleMetaphoneStrategy(settings *config.SearchSettings) Strategy {
	strategy := strictGatedStrategy(settings, TagStrictDoubleMetaphone, TagSoundex, func(q Query) func(model.NameRecord) bool {
		return func(rec model.NameRecord) bool {
			return phonetic.AnyCodeMatches(q.MetaphoneAll, phonetic.MetaphoneKeys(recordForms(rec)...))
		}
	})
	strategy.Contribution = flat(func(w config.StrategyWeights) float64 { return w.StrictDoubleMetaphone })
	return strategy
}

// trigramStrategy keeps records whose trigram similarity to the query
// reaches the adaptive threshold for the query's length. Contribution is
// similarity-proportional.
func trigramStrategy(settings *config.SearchSettings) Strategy {
	limit := settings.TrigramCap
	threshold := func(q Query) float64 {
		return settings.TrigramThresholdFor(q.CompactLen)
	}
	return Strategy{
		Tag:         TagTrigram,
		FallbackTag: TagWildcard,
		Run: func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
			records, err := corpus.ScanAll(ctx, nil)
			if err != nil {
				return nil, wrapCorpusErr("ScanAll", err)
			}

			minSim := threshold(q)
			candidates := make([]Candidate, 0)
			for _, rec := range records {
				sim := trigram.Similarity(q.Raw, rec.FullName)
				if wordSim := trigram.WordSimilarity(q.Raw, rec.FullName); wordSim > sim {
					sim = wordSim
				}
				if sim >= minSim {
					candidates = append(candidates, Candidate{Record: rec, Distance: NoDistance, Similarity: sim})
				}
			}

			sortBySimilarity(candidates)
			return capped(candidates, limit), nil
		},
		Contribution: func(c Candidate, w config.StrategyWeights) float64 {
			return w.Trigram * c.Similarity
		},
	}
}

// strictGatedStrategy builds a gated filter strategy using the strict
// (0.6 x compact query length) bound and an optional phonetic gate.
func strictGatedStrategy(settings *config.SearchSettings, tag, fallback string, gateFactory func(Query) func(model.NameRecord) bool) Strategy {
	maxDistance := settings.StrictMaxDistance
	limit := settings.StrategyCap
	return Strategy{
		Tag:         tag,
		FallbackTag: fallback,
		Run: func(ctx context.Context, corpus services.Corpus, q Query) ([]Candidate, error) {
			filter := gatedFilter{
				bound: func(q Query, _ model.NameRecord) int {
					return strdist.StrictBound(q.CompactLen, maxDistance)
				},
				limit: limit,
			}
			if gateFactory != nil {
				filter.gate = gateFactory(q)
			}
			candidates, err := filter.run(ctx, corpus, q)
			if err != nil {
				return nil, wrapCorpusErr("ScanAll", err)
			}
			return candidates, nil
		},
	}
}

func soundexGateFactory(q Query) func(model.NameRecord) bool {
	return soundexGate(q)
}

func soundexGate(q Query) func(model.NameRecord) bool {
	return func(rec model.NameRecord) bool {
		return phonetic.AnyCodeMatches(q.Soundex, phonetic.SoundexCodes(recordForms(rec)...))
	}
}

// recordForms returns the name forms a record is phonetically encoded
// under: first name, last name, and full name with spaces removed.
func recordForms(rec model.NameRecord) []string {
	return []string{rec.FirstName, rec.LastName, strings.ReplaceAll(rec.FullName, " ", "")}
}

func nameFields(rec model.NameRecord) []string {
	return []string{rec.FullName, rec.FirstName, rec.LastName}
}

func fieldContains(rec model.NameRecord, needle string) bool {
	if needle == "" {
		return false
	}
	for _, field := range nameFields(rec) {
		lower := strings.ToLower(field)
		if strings.Contains(lower, needle) {
			return true
		}
		if strings.Contains(strings.ReplaceAll(lower, "'", ""), needle) {
			return true
		}
	}
	return false
}

// booleanCandidates converts records from a signal-less strategy into
// candidates, ID-ordered and capped.
func booleanCandidates(records []model.NameRecord, limit int) []Candidate {
	candidates := make([]Candidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, Candidate{Record: rec, Distance: NoDistance})
	}
	sortByID(candidates)
	return capped(candidates, limit)
}

func wrapCorpusErr(op string, err error) error {
	if err == nil {
		return nil
	}
	// Context expiry is a per-strategy timeout, not corpus death; keep the
	// two distinguishable for the aggregator.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("corpus query timed out during %s: %w", op, err)
	}
	return interrors.NewCorpusUnavailableError(op, err)
}
