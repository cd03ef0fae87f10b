// Package search implements the combined fuzzy name search: it fans the
// query out to every matcher strategy, folds the candidate lists into one
// deduplicated score map, and returns the top results ranked by total score.
package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rduarte/go-name-matcher/config"
	"github.com/rduarte/go-name-matcher/internal/analytics"
	interrors "github.com/rduarte/go-name-matcher/internal/errors"
	"github.com/rduarte/go-name-matcher/internal/matcher"
	"github.com/rduarte/go-name-matcher/services"
)

// Service implements services.Searcher. It is stateless per call: all
// per-search data lives in call-scoped structures, so concurrent searches
// over the same corpus are safe.
type Service struct {
	corpus     services.Corpus
	settings   *config.SearchSettings
	strategies []matcher.Strategy
	byTag      map[string]matcher.Strategy
	tracker    *analytics.Service // optional
}

// Option configures a Service.
type Option func(*Service)

// WithAnalytics attaches an analytics tracker; every search records one event.
func WithAnalytics(tracker *analytics.Service) Option {
	return func(s *Service) {
		s.tracker = tracker
	}
}

// NewService creates a new search Service over the given corpus.
func NewService(corpus services.Corpus, settings *config.SearchSettings, opts ...Option) (*Service, error) {
	if corpus == nil {
		return nil, fmt.Errorf("corpus cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, interrors.NewSettingsError("", fmt.Sprintf("%d conflicts, first: %s", len(conflicts), conflicts[0]))
	}

	strategies := matcher.All(settings)
	byTag := make(map[string]matcher.Strategy, len(strategies))
	for _, strategy := range strategies {
		byTag[strategy.Tag] = strategy
	}

	service := &Service{
		corpus:     corpus,
		settings:   settings,
		strategies: strategies,
		byTag:      byTag,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// strategyOutcome carries one strategy's candidates (possibly produced by
// its fallback) across the join.
type strategyOutcome struct {
	tag        string // tag the candidates should be attributed to
	candidates []matcher.Candidate
	err        error
}

// Search runs every strategy against the corpus and returns the merged,
// ranked result list. An empty or whitespace-only query is a valid edge
// case returning an empty list. Individual strategy failures degrade to
// their fallback sibling (Wildcard at the root) and never fail the search;
// only total corpus unavailability surfaces as an error.
func (s *Service) Search(ctx context.Context, query string) (services.SearchResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	q := matcher.NewQuery(query)
	if q.Empty() {
		return services.SearchResult{
			Results: []services.ScoredResult{},
			QueryID: queryID,
			Took:    time.Since(startTime).Milliseconds(),
		}, nil
	}

	resultChan := make(chan strategyOutcome, len(s.strategies))
	for _, strategy := range s.strategies {
		go func(strat matcher.Strategy) {
			resultChan <- s.runWithFallback(ctx, strat, q)
		}(strategy)
	}

	// Join: aggregation waits for every strategy. A slow strategy delays the
	// final ranking but is individually bounded by StrategyTimeout.
	outcomes := make([]strategyOutcome, 0, len(s.strategies))
	for range s.strategies {
		outcomes = append(outcomes, <-resultChan)
	}

	failures := 0
	corpusDown := false
	for _, outcome := range outcomes {
		if outcome.err != nil {
			failures++
			if errors.Is(outcome.err, interrors.ErrCorpusUnavailable) {
				corpusDown = true
			}
		}
	}

	// A dead corpus fails every strategy and its fallback; that must not
	// masquerade as "no matches".
	if corpusDown && failures == len(s.strategies) {
		return services.SearchResult{}, interrors.NewCorpusUnavailableError("Search", nil)
	}

	results := s.aggregate(outcomes)
	took := time.Since(startTime)

	if s.tracker != nil {
		strategyHits := make(map[string]int, len(outcomes))
		for _, outcome := range outcomes {
			if outcome.err == nil && len(outcome.candidates) > 0 {
				strategyHits[outcome.tag] += len(outcome.candidates)
			}
		}
		s.tracker.TrackSearch(queryID, query, strategyHits, len(results), took)
	}

	return services.SearchResult{
		Results: results,
		Total:   len(results),
		Took:    took.Milliseconds(),
		QueryID: queryID,
	}, nil
}

// runWithFallback executes one strategy under the per-strategy timeout,
// walking its fallback chain on failure. A strategy that fails with no
// fallback left contributes zero candidates.
func (s *Service) runWithFallback(ctx context.Context, strategy matcher.Strategy, q matcher.Query) strategyOutcome {
	var firstErr error

	for tag := strategy.Tag; tag != ""; {
		current, ok := s.byTag[tag]
		if !ok {
			break
		}

		candidates, err := s.runOne(ctx, current, q)
		if err == nil {
			return strategyOutcome{tag: current.Tag, candidates: candidates}
		}
		if firstErr == nil {
			firstErr = err
		}
		log.Printf("Warning: %s strategy failed (%v), falling back to %q", current.Tag, err, current.FallbackTag)
		tag = current.FallbackTag
	}

	return strategyOutcome{tag: strategy.Tag, err: firstErr}
}

// runOne bounds a single strategy execution with the configured timeout and
// converts panics into errors so one misbehaving strategy cannot take down
// the search.
func (s *Service) runOne(ctx context.Context, strategy matcher.Strategy, q matcher.Query) (candidates []matcher.Candidate, err error) {
	runCtx := ctx
	if s.settings.StrategyTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.settings.StrategyTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s strategy panicked: %v", strategy.Tag, r)
		}
	}()

	return strategy.Run(runCtx, s.corpus, q)
}

// aggregate folds all candidate lists into one deduplicated, ranked list.
// A record's total score is the sum of every matching strategy's
// contribution, so corroboration across weak strategies counts.
func (s *Service) aggregate(outcomes []strategyOutcome) []services.ScoredResult {
	type accumulator struct {
		result  *services.ScoredResult
		foundBy map[string]struct{}
	}
	accByID := make(map[int64]*accumulator)

	// Outcomes arrive in goroutine-completion order; fold them in the fixed
	// strategy order so FoundBy and scores are deterministic.
	byTag := make(map[string]strategyOutcome, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.err == nil {
			byTag[outcome.tag] = outcome
		}
	}

	for _, strategy := range s.strategies {
		outcome, ok := byTag[strategy.Tag]
		if !ok {
			continue
		}
		scorer := s.byTag[outcome.tag]

		for _, candidate := range outcome.candidates {
			id := candidate.Record.ID
			acc, seen := accByID[id]
			if !seen {
				acc = &accumulator{
					result:  &services.ScoredResult{Record: candidate.Record, FoundBy: []string{}},
					foundBy: make(map[string]struct{}),
				}
				accByID[id] = acc
			}

			acc.result.TotalScore += scorer.Contribution(candidate, s.settings.Weights)
			if _, dup := acc.foundBy[outcome.tag]; !dup {
				acc.foundBy[outcome.tag] = struct{}{}
				acc.result.FoundBy = append(acc.result.FoundBy, outcome.tag)
			}
		}
	}

	results := make([]services.ScoredResult, 0, len(accByID))
	for _, acc := range accByID {
		// A zero-weight strategy can match a record without giving it any
		// points; records that earned nothing never rank.
		if acc.result.TotalScore <= 0 {
			continue
		}
		results = append(results, *acc.result)
	}

	// Descending total score; ties break by ascending ID to keep the
	// ordering deterministic.
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		return results[i].Record.ID < results[j].Record.ID
	})

	if len(results) > s.settings.MaxResults {
		results = results[:s.settings.MaxResults]
	}
	return results
}
