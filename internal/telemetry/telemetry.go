// Package telemetry collects in-process query metrics. Everything lives in
// memory; there is no export pipeline. The report is surfaced through the
// query_stats MCP tool and the stats subcommand.
package telemetry

import (
	"sync"
	"time"
)

// maxZeroResultQueries bounds the retained sample of queries that found
// nothing. Oldest entries are dropped first.
const maxZeroResultQueries = 50

// Metrics accumulates per-intent query counters. Safe for concurrent use.
type Metrics struct {
	mu sync.Mutex

	totalQueries  int64
	totalDuration time.Duration
	maxDuration   time.Duration

	byIntent    map[string]int64
	zeroResults int64
	zeroQueries []string
}

// NewMetrics returns an empty metrics sink.
func NewMetrics() *Metrics {
	return &Metrics{
		byIntent: make(map[string]int64),
	}
}

// Record registers one completed query.
func (m *Metrics) Record(intent string, duration time.Duration, results int, zeroResults bool, query string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalQueries++
	m.totalDuration += duration
	if duration > m.maxDuration {
		m.maxDuration = duration
	}
	m.byIntent[intent]++
	if zeroResults {
		m.zeroResults++
		m.zeroQueries = append(m.zeroQueries, query)
		if len(m.zeroQueries) > maxZeroResultQueries {
			m.zeroQueries = m.zeroQueries[len(m.zeroQueries)-maxZeroResultQueries:]
		}
	}
}

// Report is a point-in-time copy of the accumulated metrics.
type Report struct {
	TotalQueries     int64            `json:"totalQueries"`
	AvgDurationMS    float64          `json:"avgDurationMs"`
	MaxDurationMS    int64            `json:"maxDurationMs"`
	QueriesByIntent  map[string]int64 `json:"queriesByIntent"`
	ZeroResultCount  int64            `json:"zeroResultCount"`
	ZeroResultSample []string         `json:"zeroResultSample,omitempty"`
}

// Snapshot copies the current counters. The returned report is detached and
// safe to serialize while recording continues.
func (m *Metrics) Snapshot() Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := Report{
		TotalQueries:    m.totalQueries,
		MaxDurationMS:   m.maxDuration.Milliseconds(),
		QueriesByIntent: make(map[string]int64, len(m.byIntent)),
		ZeroResultCount: m.zeroResults,
	}
	if m.totalQueries > 0 {
		r.AvgDurationMS = float64(m.totalDuration.Milliseconds()) / float64(m.totalQueries)
	}
	for k, v := range m.byIntent {
		r.QueriesByIntent[k] = v
	}
	r.ZeroResultSample = append(r.ZeroResultSample, m.zeroQueries...)
	return r
}
