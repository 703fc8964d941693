package metric

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.PrometheusRegistry())
	assert.NotNil(t, registry.CoreMetrics())
}

func TestRegistry_RegisterCounter(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "A test counter",
	})

	err := registry.RegisterCounter("test-component", "test_counter", counter)
	require.NoError(t, err)

	counter.Inc()

	assert.True(t, gatheredMetric(t, registry, "test_counter"))
}

func TestRegistry_RegisterCounter_Duplicate(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dup_counter",
		Help: "A test counter",
	})

	require.NoError(t, registry.RegisterCounter("c", "dup_counter", counter))

	err := registry.RegisterCounter("c", "dup_counter", counter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_gauge",
		Help: "A test gauge",
	})

	require.NoError(t, registry.RegisterGauge("c", "test_gauge", gauge))
	assert.True(t, registry.Unregister("c", "test_gauge"))
	assert.False(t, registry.Unregister("c", "test_gauge"))
	assert.False(t, registry.Unregister("c", "never_registered"))
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			counter := prometheus.NewCounter(prometheus.CounterOpts{
				Name: fmt.Sprintf("concurrent_counter_%d", n),
				Help: "A test counter",
			})
			assert.NoError(t, registry.RegisterCounter("c", fmt.Sprintf("counter_%d", n), counter))
		}(i)
	}
	wg.Wait()
}

func TestMetrics_RecordResolution(t *testing.T) {
	registry := NewRegistry()
	core := registry.CoreMetrics()

	core.RecordResolution(true)
	core.RecordResolution(false)
	core.RecordResolution(false)

	assert.True(t, gatheredMetric(t, registry, "hipcgates_resolution_gates_total"))
	assert.True(t, gatheredMetric(t, registry, "hipcgates_resolution_unresolved_markers_total"))
}

func TestMetrics_RecordValidation(t *testing.T) {
	registry := NewRegistry()
	core := registry.CoreMetrics()

	core.RecordValidation("ok", 2, 5*time.Millisecond)
	core.RecordValidation("error", 0, time.Millisecond)

	assert.True(t, gatheredMetric(t, registry, "hipcgates_validation_requests_total"))
	assert.True(t, gatheredMetric(t, registry, "hipcgates_validation_conflicts_total"))
	assert.True(t, gatheredMetric(t, registry, "hipcgates_validation_duration_seconds"))
}

func TestMetrics_BatchCounters(t *testing.T) {
	registry := NewRegistry()
	core := registry.CoreMetrics()

	core.RecordRowProcessed()
	core.RecordRowExcluded()
	core.RecordGatesTokenized(7)

	assert.True(t, gatheredMetric(t, registry, "hipcgates_batch_rows_processed_total"))
	assert.True(t, gatheredMetric(t, registry, "hipcgates_batch_rows_excluded_total"))
	assert.True(t, gatheredMetric(t, registry, "hipcgates_batch_gates_tokenized_total"))
}

// gatheredMetric reports whether the registry gathers a metric family with
// the given name.
func gatheredMetric(t *testing.T, registry *Registry, name string) bool {
	t.Helper()
	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)
	for _, mf := range metricFamilies {
		if mf.GetName() == name {
			return true
		}
	}
	return false
}
