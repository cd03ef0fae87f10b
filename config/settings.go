// Package config provides configuration structures for the name matcher.
// It defines strategy weights, result caps, distance bounds, and trigram
// threshold tiers. Every tunable the strategies and the score aggregator
// consume lives here, so two deployments can only diverge on purpose.
package config

import (
	"fmt"
	"time"
)

// StrategyWeights holds the fixed per-strategy point contributions used by
// the score aggregator. A record's total score is the sum of the weights of
// every strategy that matched it, so a record corroborated by several weak
// strategies can outrank one found by a single strong strategy.
//
// Trigram and Levenshtein are not flat: Trigram contributes
// weight x similarity, and Levenshtein contributes weight / (distance + 1).
type StrategyWeights struct {
	Exact                 float64 `json:"exact"`
	Normalized            float64 `json:"normalized"`
	Trigram               float64 `json:"trigram"` // scaled by similarity
	StrictLevenshtein     float64 `json:"strict_levenshtein"`
	StrictDoubleMetaphone float64 `json:"strict_double_metaphone"`
	StrictMetaphone       float64 `json:"strict_metaphone"`
	StrictSoundex         float64 `json:"strict_soundex"`
	Levenshtein           float64 `json:"levenshtein"` // scaled by 1/(distance+1)
	Soundex               float64 `json:"soundex"`
	Wildcard              float64 `json:"wildcard"`
}

// TrigramThresholds defines the adaptive similarity cutoffs by query length:
// short queries need high similarity (a 3-char query shares trigrams with
// almost anything), long queries tolerate more drift.
type TrigramThresholds struct {
	ShortMaxLen  int     `json:"short_max_len"`  // queries up to this length use Short
	MediumMaxLen int     `json:"medium_max_len"` // queries up to this length use Medium
	Short        float64 `json:"short"`
	Medium       float64 `json:"medium"`
	Long         float64 `json:"long"`
}

// SearchSettings contains all configuration options for a combined search.
type SearchSettings struct {
	Weights StrategyWeights `json:"weights"`

	// MaxDistance is the absolute edit-distance ceiling; the effective bound
	// per comparison is further reduced proportionally to query length.
	MaxDistance int `json:"max_distance"`

	// StrictMaxDistance is the ceiling used by the strict strategies.
	StrictMaxDistance int `json:"strict_max_distance"`

	// LevenshteinPrefixLen bounds the Levenshtein candidate set: only records
	// sharing this many leading characters with the query are compared.
	LevenshteinPrefixLen int `json:"levenshtein_prefix_len"`

	Trigram TrigramThresholds `json:"trigram"`

	// Per-strategy result caps.
	ExactCap    int `json:"exact_cap"`
	StrategyCap int `json:"strategy_cap"`
	TrigramCap  int `json:"trigram_cap"`

	// MaxResults is the length of the final ranked list.
	MaxResults int `json:"max_results"`

	// StrategyTimeout bounds each strategy's execution; a timed-out strategy
	// contributes zero candidates instead of failing the search.
	StrategyTimeout time.Duration `json:"strategy_timeout"`
}

// DefaultSearchSettings returns the documented default configuration.
func DefaultSearchSettings() SearchSettings {
	settings := SearchSettings{}
	settings.ApplyDefaults()
	return settings
}

// ApplyDefaults applies default values to any unset (zero) settings.
func (settings *SearchSettings) ApplyDefaults() {
	w := &settings.Weights
	if w.Exact == 0 {
		w.Exact = 10
	}
	if w.Normalized == 0 {
		w.Normalized = 8
	}
	if w.Trigram == 0 {
		w.Trigram = 6
	}
	if w.StrictLevenshtein == 0 {
		w.StrictLevenshtein = 6
	}
	if w.StrictDoubleMetaphone == 0 {
		w.StrictDoubleMetaphone = 5
	}
	if w.StrictMetaphone == 0 {
		w.StrictMetaphone = 4.5
	}
	if w.StrictSoundex == 0 {
		w.StrictSoundex = 4
	}
	if w.Levenshtein == 0 {
		w.Levenshtein = 4
	}
	if w.Soundex == 0 {
		w.Soundex = 3
	}
	if w.Wildcard == 0 {
		w.Wildcard = 2
	}

	if settings.MaxDistance == 0 {
		settings.MaxDistance = 3
	}
	if settings.StrictMaxDistance == 0 {
		settings.StrictMaxDistance = 3
	}
	if settings.LevenshteinPrefixLen == 0 {
		settings.LevenshteinPrefixLen = 3
	}

	tg := &settings.Trigram
	if tg.ShortMaxLen == 0 {
		tg.ShortMaxLen = 4
	}
	if tg.MediumMaxLen == 0 {
		tg.MediumMaxLen = 8
	}
	if tg.Short == 0 {
		tg.Short = 0.8
	}
	if tg.Medium == 0 {
		tg.Medium = 0.6
	}
	if tg.Long == 0 {
		tg.Long = 0.4
	}

	if settings.ExactCap == 0 {
		settings.ExactCap = 10
	}
	if settings.StrategyCap == 0 {
		settings.StrategyCap = 20
	}
	if settings.TrigramCap == 0 {
		settings.TrigramCap = 15
	}
	if settings.MaxResults == 0 {
		settings.MaxResults = 10
	}
	if settings.StrategyTimeout == 0 {
		settings.StrategyTimeout = 2 * time.Second
	}
}

// Validate checks the settings for inconsistencies and returns a list of
// conflict messages. An empty list means the settings are usable.
func (settings *SearchSettings) Validate() []string {
	var conflicts []string

	checkNonNegative := func(name string, value float64) {
		if value < 0 {
			conflicts = append(conflicts, fmt.Sprintf("Weight '%s' must not be negative (got %v)", name, value))
		}
	}
	checkNonNegative("exact", settings.Weights.Exact)
	checkNonNegative("normalized", settings.Weights.Normalized)
	checkNonNegative("trigram", settings.Weights.Trigram)
	checkNonNegative("strict_levenshtein", settings.Weights.StrictLevenshtein)
	checkNonNegative("strict_double_metaphone", settings.Weights.StrictDoubleMetaphone)
	checkNonNegative("strict_metaphone", settings.Weights.StrictMetaphone)
	checkNonNegative("strict_soundex", settings.Weights.StrictSoundex)
	checkNonNegative("levenshtein", settings.Weights.Levenshtein)
	checkNonNegative("soundex", settings.Weights.Soundex)
	checkNonNegative("wildcard", settings.Weights.Wildcard)

	if settings.MaxDistance < 0 {
		conflicts = append(conflicts, "max_distance must not be negative")
	}
	if settings.StrictMaxDistance < 0 {
		conflicts = append(conflicts, "strict_max_distance must not be negative")
	}
	if settings.LevenshteinPrefixLen < 1 {
		conflicts = append(conflicts, "levenshtein_prefix_len must be at least 1")
	}
	if settings.MaxResults < 1 {
		conflicts = append(conflicts, "max_results must be at least 1")
	}

	checkThreshold := func(name string, value float64) {
		if value < 0 || value > 1 {
			conflicts = append(conflicts, fmt.Sprintf("Trigram threshold '%s' must be in [0,1] (got %v)", name, value))
		}
	}
	checkThreshold("short", settings.Trigram.Short)
	checkThreshold("medium", settings.Trigram.Medium)
	checkThreshold("long", settings.Trigram.Long)

	if settings.Trigram.ShortMaxLen > settings.Trigram.MediumMaxLen {
		conflicts = append(conflicts, "Trigram short_max_len must not exceed medium_max_len")
	}
	if settings.Trigram.Short < settings.Trigram.Medium || settings.Trigram.Medium < settings.Trigram.Long {
		conflicts = append(conflicts, "Trigram thresholds must not increase with query length (short >= medium >= long)")
	}

	return conflicts
}

// TrigramThresholdFor returns the similarity cutoff for a query of the given
// length (in runes, whitespace included).
func (settings *SearchSettings) TrigramThresholdFor(queryLen int) float64 {
	switch {
	case queryLen <= settings.Trigram.ShortMaxLen:
		return settings.Trigram.Short
	case queryLen <= settings.Trigram.MediumMaxLen:
		return settings.Trigram.Medium
	default:
		return settings.Trigram.Long
	}
}
