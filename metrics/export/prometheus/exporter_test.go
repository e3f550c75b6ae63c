package prometheus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisauth "github.com/PGRjoystick/baileys-redis-auth"
)

type fakeSource struct {
	snapshot redisauth.MetricsSnapshot
}

func (f fakeSource) MetricsSnapshot() redisauth.MetricsSnapshot { return f.snapshot }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: redisauth.MetricsSnapshot{
			Counters:   map[redisauth.MetricID]uint64{},
			Histograms: map[redisauth.MetricID][]uint64{},
		},
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderDeterministicIncludesCounterAndHistogram(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: redisauth.MetricsSnapshot{
			Counters: map[redisauth.MetricID]uint64{
				redisauth.MetricRecordsWritten: 7,
			},
			Histograms: map[redisauth.MetricID][]uint64{
				redisauth.MetricReadLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
	})

	out := exp.Render()
	if !strings.Contains(out, "redisauth_records_written_total 7") {
		t.Fatalf("expected records_written counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "redisauth_read_latency_seconds_bucket{le=\"0.005\"} 1") {
		t.Fatalf("expected first histogram bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "redisauth_read_latency_seconds_bucket{le=\"+Inf\"} 36") {
		t.Fatalf("expected +Inf cumulative bucket in output, got:\n%s", out)
	}
}

func TestHandlerWritesPrometheusContentType(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: redisauth.MetricsSnapshot{
			Counters:   map[redisauth.MetricID]uint64{redisauth.MetricCredsSaved: 1},
			Histograms: map[redisauth.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRenderFromLiveStore(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store, err := redisauth.Open(ctx, redisauth.Config{
		Redis:     &redis.Options{Addr: mr.Addr()},
		Namespace: "metrics-test",
		Metrics:   redisauth.MetricsConfig{Enabled: true},
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	err = store.Keys().Set(ctx, map[string]map[string]any{
		"pre-key": {"1": map[string]any{"public": []byte{1}}},
	})
	if err != nil {
		t.Fatalf("write record: %v", err)
	}

	out := NewPrometheusExporter(store).Render()
	if !strings.Contains(out, "redisauth_records_written_total 1") {
		t.Fatalf("expected live counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "redisauth_creds_initialized_total 1") {
		t.Fatalf("expected creds counter in output, got:\n%s", out)
	}
}

func BenchmarkRender(b *testing.B) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: redisauth.MetricsSnapshot{
			Counters: map[redisauth.MetricID]uint64{
				redisauth.MetricCredsLoaded:      1000,
				redisauth.MetricCredsSaved:       40,
				redisauth.MetricRecordsRequested: 8000,
				redisauth.MetricRecordsFound:     7900,
				redisauth.MetricRecordsWritten:   800,
				redisauth.MetricRecordsDeleted:   10,
			},
			Histograms: map[redisauth.MetricID][]uint64{
				redisauth.MetricReadLatency: {10, 20, 30, 40, 50, 60, 70, 80},
			},
		},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = exp.Render()
	}
}
