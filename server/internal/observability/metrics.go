package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics collects resolution counters for the metrics endpoint. Counter
// values are plain strings (outcome, strategy, timezone kind) so the package
// stays free of service imports. All methods are safe for concurrent use.
type Metrics struct {
	mu sync.RWMutex

	startTime time.Time

	requestTotal  atomic.Int64
	requestFailed atomic.Int64

	outcomeCounts  map[string]*atomic.Int64
	timezoneCounts map[string]*atomic.Int64

	strategyMetrics map[string]*StrategyMetrics
}

// StrategyMetrics tracks per-strategy execution counters.
type StrategyMetrics struct {
	executionCount  atomic.Int64
	errorCount      atomic.Int64
	totalDurationMs atomic.Int64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime:       time.Now(),
		outcomeCounts:   make(map[string]*atomic.Int64),
		timezoneCounts:  make(map[string]*atomic.Int64),
		strategyMetrics: make(map[string]*StrategyMetrics),
	}
}

// RecordResolution records a completed resolution.
func (m *Metrics) RecordResolution(outcome, strategy, timezoneKind string, duration time.Duration) {
	m.requestTotal.Add(1)
	m.counter(m.outcomeCounts, outcome).Add(1)
	m.counter(m.timezoneCounts, timezoneKind).Add(1)

	if strategy != "" {
		sm := m.strategyFor(strategy)
		sm.executionCount.Add(1)
		sm.totalDurationMs.Add(duration.Milliseconds())
	}
}

// RecordFailure records a resolution that ended in an error.
func (m *Metrics) RecordFailure(strategy string) {
	m.requestTotal.Add(1)
	m.requestFailed.Add(1)
	if strategy != "" {
		m.strategyFor(strategy).errorCount.Add(1)
	}
}

func (m *Metrics) counter(counts map[string]*atomic.Int64, key string) *atomic.Int64 {
	m.mu.RLock()
	c, ok := counts[key]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok = counts[key]; ok {
		return c
	}
	c = &atomic.Int64{}
	counts[key] = c
	return c
}

func (m *Metrics) strategyFor(strategy string) *StrategyMetrics {
	m.mu.RLock()
	sm, ok := m.strategyMetrics[strategy]
	m.mu.RUnlock()
	if ok {
		return sm
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sm, ok = m.strategyMetrics[strategy]; ok {
		return sm
	}
	sm = &StrategyMetrics{}
	m.strategyMetrics[strategy] = sm
	return sm
}

// StrategySnapshot is a point-in-time copy of one strategy's counters.
type StrategySnapshot struct {
	ExecutionCount int64 `json:"execution_count"`
	ErrorCount     int64 `json:"error_count"`
	AvgDurationMs  int64 `json:"avg_duration_ms"`
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	UptimeSeconds int64                       `json:"uptime_seconds"`
	RequestTotal  int64                       `json:"request_total"`
	RequestFailed int64                       `json:"request_failed"`
	Outcomes      map[string]int64            `json:"outcomes"`
	Timezones     map[string]int64            `json:"timezones"`
	Strategies    map[string]StrategySnapshot `json:"strategies"`
}

// SuccessRate returns the fraction of requests that did not fail, in percent.
func (s *MetricsSnapshot) SuccessRate() float64 {
	if s.RequestTotal == 0 {
		return 100.0
	}
	return float64(s.RequestTotal-s.RequestFailed) / float64(s.RequestTotal) * 100.0
}

// Snapshot returns a consistent copy of the current counters.
func (m *Metrics) Snapshot() *MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := &MetricsSnapshot{
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
		RequestTotal:  m.requestTotal.Load(),
		RequestFailed: m.requestFailed.Load(),
		Outcomes:      make(map[string]int64, len(m.outcomeCounts)),
		Timezones:     make(map[string]int64, len(m.timezoneCounts)),
		Strategies:    make(map[string]StrategySnapshot, len(m.strategyMetrics)),
	}
	for k, c := range m.outcomeCounts {
		snap.Outcomes[k] = c.Load()
	}
	for k, c := range m.timezoneCounts {
		snap.Timezones[k] = c.Load()
	}
	for k, sm := range m.strategyMetrics {
		count := sm.executionCount.Load()
		avg := int64(0)
		if count > 0 {
			avg = sm.totalDurationMs.Load() / count
		}
		snap.Strategies[k] = StrategySnapshot{
			ExecutionCount: count,
			ErrorCount:     sm.errorCount.Load(),
			AvgDurationMs:  avg,
		}
	}
	return snap
}

// Reset clears all counters. Intended for tests.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.startTime = time.Now()
	m.requestTotal.Store(0)
	m.requestFailed.Store(0)
	m.outcomeCounts = make(map[string]*atomic.Int64)
	m.timezoneCounts = make(map[string]*atomic.Int64)
	m.strategyMetrics = make(map[string]*StrategyMetrics)
}
