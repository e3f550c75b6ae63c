package redisauth

import (
	"testing"
	"time"
)

func TestMetricsDisabledByDefault(t *testing.T) {
	m := NewMetrics(MetricsConfig{})

	if m.Enabled() {
		t.Fatal("metrics enabled without opting in")
	}
	m.Inc(MetricCredsSaved)
	m.Add(MetricRecordsWritten, 10)
	if m.Value(MetricCredsSaved) != 0 || m.Value(MetricRecordsWritten) != 0 {
		t.Fatal("disabled metrics recorded values")
	}

	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled snapshot not empty: %v", snap)
	}
}

func TestMetricsCountsWhenEnabled(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricCredsLoaded)
	m.Add(MetricRecordsRequested, 5)
	m.Add(MetricRecordsRequested, 2)

	if got := m.Value(MetricCredsLoaded); got != 1 {
		t.Fatalf("loaded = %d, want 1", got)
	}
	if got := m.Value(MetricRecordsRequested); got != 7 {
		t.Fatalf("requested = %d, want 7", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricRecordsRequested] != 7 {
		t.Fatalf("snapshot requested = %d, want 7", snap.Counters[MetricRecordsRequested])
	}
	if len(snap.Histograms) != 0 {
		t.Fatal("histograms present without latency opt-in")
	}
}

func TestMetricsLatencyHistogram(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricReadLatency, 3*time.Millisecond)
	m.Observe(MetricReadLatency, 40*time.Millisecond)
	m.Observe(MetricReadLatency, 600*time.Millisecond)
	// Only the read-latency metric owns a histogram.
	m.Observe(MetricCredsSaved, time.Second)

	snap := m.Snapshot()
	buckets, ok := snap.Histograms[MetricReadLatency]
	if !ok {
		t.Fatal("read latency histogram missing")
	}
	if buckets[0] != 1 || buckets[3] != 1 || buckets[7] != 1 {
		t.Fatalf("bucket spread = %v", buckets)
	}
	if _, ok := snap.Histograms[MetricCredsSaved]; ok {
		t.Fatal("histogram recorded for a counter-only metric")
	}
}

func TestMetricsNilAndOutOfRange(t *testing.T) {
	var m *Metrics

	m.Inc(MetricCredsSaved)
	m.Observe(MetricReadLatency, time.Millisecond)
	if m.Value(MetricCredsSaved) != 0 {
		t.Fatal("nil metrics returned a value")
	}
	if m.Enabled() {
		t.Fatal("nil metrics reported enabled")
	}
	snap := m.Snapshot()
	if len(snap.Counters) != 0 {
		t.Fatal("nil snapshot not empty")
	}

	enabled := NewMetrics(MetricsConfig{Enabled: true})
	enabled.Inc(metricIDCount)
	enabled.Inc(MetricID(4000))
	if enabled.Value(MetricID(4000)) != 0 {
		t.Fatal("out-of-range id recorded")
	}
}
