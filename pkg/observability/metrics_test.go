package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics(t *testing.T) {
	var m Metrics = NoopMetrics{}

	m.Counter("scores", 1)
	m.Gauge("queue_depth", 4)
	m.Histogram("score_value", 72.5)
	m.Timing("calc_duration", time.Second)
}

func TestInMemoryMetrics(t *testing.T) {
	t.Run("counter accumulates", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Counter("scores.calculated", 1)
		m.Counter("scores.calculated", 2)

		assert.Equal(t, int64(3), m.GetCounter("scores.calculated"))
	})

	t.Run("tags partition counters", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Counter("scores.calculated", 1, T("department", "engineering"))
		m.Counter("scores.calculated", 1, T("department", "sales"))
		m.Counter("scores.calculated", 1, T("department", "engineering"))

		assert.Equal(t, int64(2), m.GetCounter("scores.calculated", T("department", "engineering")))
		assert.Equal(t, int64(1), m.GetCounter("scores.calculated", T("department", "sales")))
		assert.Equal(t, int64(0), m.GetCounter("scores.calculated"))
	})

	t.Run("gauge keeps last value", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Gauge("batch.pending", 12)
		m.Gauge("batch.pending", 3)

		assert.Equal(t, 3.0, m.GetGauge("batch.pending"))
	})

	t.Run("gauges partition by tag", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Gauge("pool.connections", 10, T("pool", "primary"))
		m.Gauge("pool.connections", 5, T("pool", "replica"))

		assert.Equal(t, 10.0, m.GetGauge("pool.connections", T("pool", "primary")))
		assert.Equal(t, 5.0, m.GetGauge("pool.connections", T("pool", "replica")))
	})

	t.Run("histogram records every observation", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Histogram("score.value", 68)
		m.Histogram("score.value", 91)
		m.Histogram("score.value", 74)

		values := m.GetHistogram("score.value")
		assert.Len(t, values, 3)
		assert.Contains(t, values, 68.0)
		assert.Contains(t, values, 91.0)
		assert.Contains(t, values, 74.0)
	})

	t.Run("timing records every observation", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Timing("calc.duration", 40*time.Millisecond)
		m.Timing("calc.duration", 90*time.Millisecond)

		timings := m.GetTimings("calc.duration")
		assert.Len(t, timings, 2)
		assert.Contains(t, timings, 40*time.Millisecond)
		assert.Contains(t, timings, 90*time.Millisecond)
	})

	t.Run("reset clears all series", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Counter("a", 1)
		m.Gauge("b", 1)
		m.Histogram("c", 1)
		m.Timing("d", time.Second)

		m.Reset()

		assert.Equal(t, int64(0), m.GetCounter("a"))
		assert.Equal(t, 0.0, m.GetGauge("b"))
		assert.Empty(t, m.GetHistogram("c"))
		assert.Empty(t, m.GetTimings("d"))
	})
}

func TestTag(t *testing.T) {
	tag := T("operation", "calculate_score")
	assert.Equal(t, "operation", tag.Key)
	assert.Equal(t, "calculate_score", tag.Value)
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "scores", formatKey("scores", nil))
	assert.Equal(t, "scores:department=sales", formatKey("scores", []Tag{T("department", "sales")}))
	assert.Equal(t,
		"scores:department=sales:period=weekly",
		formatKey("scores", []Tag{T("department", "sales"), T("period", "weekly")}))
}

func TestMetricConstants(t *testing.T) {
	assert.Equal(t, "talentscope.operation.total", MetricOperationTotal)
	assert.Equal(t, "talentscope.operation.duration", MetricOperationDuration)
	assert.Equal(t, "talentscope.operation.errors", MetricOperationErrors)
	assert.Equal(t, "talentscope.scores.calculated", MetricScoresCalculated)
	assert.Equal(t, "talentscope.scores.batch_runs", MetricBatchRuns)
}
