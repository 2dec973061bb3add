package extract

import (
	"slices"
	"sync"
	"time"
)

// maxRunSamples caps memory use when runs arrive faster than they expire.
const maxRunSamples = 4096

// StatsSnapshot is a point-in-time aggregate of extraction run durations.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

type runSample struct {
	at time.Time
	ms int64
}

// RunStats keeps the durations of recent extraction runs. Samples older than
// the window, or beyond the newest maxRunSamples, are dropped.
type RunStats struct {
	mu      sync.Mutex
	window  time.Duration
	samples []runSample // oldest first
}

// NewRunStats tracks runs over window; a non-positive window means one hour.
func NewRunStats(window time.Duration) *RunStats {
	if window <= 0 {
		window = time.Hour
	}
	return &RunStats{window: window}
}

// Record adds one run's duration in milliseconds.
func (s *RunStats) Record(durationMs int64) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked(now)
	if len(s.samples) == maxRunSamples {
		s.samples = slices.Delete(s.samples, 0, 1)
	}
	s.samples = append(s.samples, runSample{at: now, ms: max(durationMs, 0)})
}

// Reset drops all samples.
func (s *RunStats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = nil
}

// Snapshot aggregates the samples still inside the window.
func (s *RunStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	s.expireLocked(time.Now())
	values := make([]int64, len(s.samples))
	for i, sm := range s.samples {
		values[i] = sm.ms
	}
	s.mu.Unlock()

	if len(values) == 0 {
		return StatsSnapshot{}
	}
	slices.Sort(values)

	var sum int64
	for _, v := range values {
		sum += v
	}
	return StatsSnapshot{
		Count: len(values),
		MinMs: values[0],
		MaxMs: values[len(values)-1],
		AvgMs: float64(sum) / float64(len(values)),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}
}

// expireLocked drops samples recorded before the window. Samples are in
// time order, so the expired ones form a prefix.
func (s *RunStats) expireLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	i := 0
	for i < len(s.samples) && s.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		s.samples = slices.Delete(s.samples, 0, i)
	}
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []int64, pct float64) float64 {
	switch {
	case len(sorted) == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[len(sorted)-1])
	}

	rank := float64(len(sorted)-1) * pct / 100
	lo := int(rank)
	if lo+1 >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + (float64(sorted[lo+1])-float64(sorted[lo]))*frac
}
