package model

import "time"

// SearchEvent represents a single search invocation for analytics tracking.
type SearchEvent struct {
	EventID      string         `json:"event_id"` // unique UUID for this event
	Query        string         `json:"query"`
	StrategyHits map[string]int `json:"strategy_hits"` // strategy tag -> candidate count
	ResultCount  int            `json:"result_count"`
	ResponseTime time.Duration  `json:"response_time"`
	Timestamp    time.Time      `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search terms.
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// StrategyStats represents aggregated per-strategy match statistics.
type StrategyStats struct {
	Strategy       string  `json:"strategy"`
	SearchesHit    int     `json:"searches_hit"`    // searches in which the strategy produced candidates
	TotalHits      int     `json:"total_hits"`      // candidates produced across all searches
	HitRatePercent float64 `json:"hit_rate_percent"`
}
