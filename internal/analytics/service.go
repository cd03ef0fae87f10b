// Package analytics tracks search events in memory for diagnostics: which
// strategies are actually earning their keep, and what people search for.
package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rduarte/go-name-matcher/model"
)

const maxEventsToKeep = 10000 // Keep last 10k events for performance

// Service implements analytics tracking and reporting
type Service struct {
	mutex  sync.RWMutex
	events []model.SearchEvent
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.SearchEvent, 0),
	}
}

// TrackSearch records a completed search invocation.
func (s *Service) TrackSearch(eventID, query string, strategyHits map[string]int, resultCount int, took time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	hits := make(map[string]int, len(strategyHits))
	for tag, count := range strategyHits {
		hits[tag] = count
	}

	s.events = append(s.events, model.SearchEvent{
		EventID:      eventID,
		Query:        query,
		StrategyHits: hits,
		ResultCount:  resultCount,
		ResponseTime: took,
		Timestamp:    time.Now(),
	})

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// EventCount returns the number of tracked events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// PopularSearches returns the most frequent queries (case-insensitive),
// most popular first, ties by query string.
func (s *Service) PopularSearches(limit int) []model.PopularSearch {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	counts := make(map[string]int)
	for _, event := range s.events {
		counts[strings.ToLower(event.Query)]++
	}

	popular := make([]model.PopularSearch, 0, len(counts))
	for query, count := range counts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}

	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if limit > 0 && len(popular) > limit {
		popular = popular[:limit]
	}
	return popular
}

// StrategyStats returns per-strategy aggregate statistics, ordered by
// descending hit rate, ties by strategy tag.
func (s *Service) StrategyStats() []model.StrategyStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	searchesHit := make(map[string]int)
	totalHits := make(map[string]int)
	for _, event := range s.events {
		for tag, hits := range event.StrategyHits {
			if hits > 0 {
				searchesHit[tag]++
				totalHits[tag] += hits
			}
		}
	}

	stats := make([]model.StrategyStats, 0, len(searchesHit))
	for tag, count := range searchesHit {
		rate := 0.0
		if len(s.events) > 0 {
			rate = float64(count) / float64(len(s.events)) * 100.0
		}
		stats = append(stats, model.StrategyStats{
			Strategy:       tag,
			SearchesHit:    count,
			TotalHits:      totalHits[tag],
			HitRatePercent: rate,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].HitRatePercent != stats[j].HitRatePercent {
			return stats[i].HitRatePercent > stats[j].HitRatePercent
		}
		return stats[i].Strategy < stats[j].Strategy
	})
	return stats
}
