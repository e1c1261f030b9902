package qa

import (
	"sort"
	"sync"
	"time"
)

type querySample struct {
	timestamp time.Time
	intent    Intent
	duration  time.Duration
}

// StatsSnapshot is a point-in-time aggregate of query latencies.
type StatsSnapshot struct {
	Count    int            `json:"count"`
	MinUs    int64          `json:"min_us"`
	MaxUs    int64          `json:"max_us"`
	AvgUs    float64        `json:"avg_us"`
	P50Us    float64        `json:"p50_us"`
	P95Us    float64        `json:"p95_us"`
	ByIntent map[Intent]int `json:"by_intent"`
}

// QueryStats tracks recent query latencies and intent distribution
// within a rolling window.
type QueryStats struct {
	mu      sync.Mutex
	samples []querySample
	maxAge  time.Duration
}

func NewQueryStats(maxAge time.Duration) *QueryStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &QueryStats{
		samples: make([]querySample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds a completed query to the window.
func (s *QueryStats) Record(intent Intent, d time.Duration) {
	if d < 0 {
		d = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, querySample{
		timestamp: now,
		intent:    intent,
		duration:  d,
	})
}

// Snapshot aggregates the current window.
func (s *QueryStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return StatsSnapshot{ByIntent: map[Intent]int{}}
	}

	values := make([]int64, 0, len(s.samples))
	byIntent := make(map[Intent]int)
	var sum int64
	for _, sm := range s.samples {
		us := sm.duration.Microseconds()
		values = append(values, us)
		sum += us
		byIntent[sm.intent]++
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count:    len(values),
		MinUs:    values[0],
		MaxUs:    values[len(values)-1],
		AvgUs:    float64(sum) / float64(len(values)),
		P50Us:    percentile(values, 50),
		P95Us:    percentile(values, 95),
		ByIntent: byIntent,
	}
}

func (s *QueryStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples = s.samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
