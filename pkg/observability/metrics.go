package observability

import (
	"sync"
	"time"
)

// Metrics records application measurements. Implementations must be
// safe for concurrent use.
type Metrics interface {
	Counter(name string, value int64, tags ...Tag)
	Gauge(name string, value float64, tags ...Tag)
	Histogram(name string, value float64, tags ...Tag)
	Timing(name string, duration time.Duration, tags ...Tag)
}

// Tag labels a metric series.
type Tag struct {
	Key   string
	Value string
}

// T is shorthand for constructing a Tag.
func T(key, value string) Tag { return Tag{Key: key, Value: value} }

// NoopMetrics discards everything. It is the default collector when
// none is configured.
type NoopMetrics struct{}

func (NoopMetrics) Counter(string, int64, ...Tag)        {}
func (NoopMetrics) Gauge(string, float64, ...Tag)        {}
func (NoopMetrics) Histogram(string, float64, ...Tag)    {}
func (NoopMetrics) Timing(string, time.Duration, ...Tag) {}

// InMemoryMetrics keeps every series in process memory, with accessors
// for inspecting them. Used in tests and development.
type InMemoryMetrics struct {
	mu       sync.RWMutex
	counters map[string]int64
	gauges   map[string]float64
	samples  map[string][]float64
	timings  map[string][]time.Duration
}

func NewInMemoryMetrics() *InMemoryMetrics {
	m := &InMemoryMetrics{}
	m.Reset()
	return m
}

func (m *InMemoryMetrics) Counter(name string, value int64, tags ...Tag) {
	m.mu.Lock()
	m.counters[formatKey(name, tags)] += value
	m.mu.Unlock()
}

func (m *InMemoryMetrics) Gauge(name string, value float64, tags ...Tag) {
	m.mu.Lock()
	m.gauges[formatKey(name, tags)] = value
	m.mu.Unlock()
}

func (m *InMemoryMetrics) Histogram(name string, value float64, tags ...Tag) {
	m.mu.Lock()
	k := formatKey(name, tags)
	m.samples[k] = append(m.samples[k], value)
	m.mu.Unlock()
}

func (m *InMemoryMetrics) Timing(name string, duration time.Duration, tags ...Tag) {
	m.mu.Lock()
	k := formatKey(name, tags)
	m.timings[k] = append(m.timings[k], duration)
	m.mu.Unlock()
}

// GetCounter returns the accumulated value of a counter series.
func (m *InMemoryMetrics) GetCounter(name string, tags ...Tag) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counters[formatKey(name, tags)]
}

// GetGauge returns the last value set on a gauge series.
func (m *InMemoryMetrics) GetGauge(name string, tags ...Tag) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gauges[formatKey(name, tags)]
}

// GetHistogram returns every observation recorded on a histogram series.
func (m *InMemoryMetrics) GetHistogram(name string, tags ...Tag) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.samples[formatKey(name, tags)]
}

// GetTimings returns every duration recorded on a timing series.
func (m *InMemoryMetrics) GetTimings(name string, tags ...Tag) []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.timings[formatKey(name, tags)]
}

// Reset discards all recorded series.
func (m *InMemoryMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = map[string]int64{}
	m.gauges = map[string]float64{}
	m.samples = map[string][]float64{}
	m.timings = map[string][]time.Duration{}
}

// formatKey folds tags into the series key, e.g. "scores:department=sales".
func formatKey(name string, tags []Tag) string {
	for _, t := range tags {
		name += ":" + t.Key + "=" + t.Value
	}
	return name
}

// Standard metric names used throughout Talentscope.
const (
	// Operation metrics
	MetricOperationTotal    = "talentscope.operation.total"
	MetricOperationDuration = "talentscope.operation.duration"
	MetricOperationErrors   = "talentscope.operation.errors"

	// Scoring metrics
	MetricScoresCalculated = "talentscope.scores.calculated"
	MetricScoreDuration    = "talentscope.scores.duration"
	MetricBatchRuns        = "talentscope.scores.batch_runs"
	MetricBatchFailures    = "talentscope.scores.batch_failures"
	MetricScoreCacheHits   = "talentscope.scores.cache_hits"
	MetricScoreCacheMisses = "talentscope.scores.cache_misses"

	// Analysis metrics
	MetricGapAnalyses      = "talentscope.skills.gap_analyses"
	MetricTrendPredictions = "talentscope.trends.predictions"
	MetricRecommendations  = "talentscope.assignment.recommendations"
)
