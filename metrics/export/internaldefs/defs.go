package internaldefs

import (
	redisauth "github.com/PGRjoystick/baileys-redis-auth"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   redisauth.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   redisauth.MetricID
	Name string
	Help string
}

// CounterDefs lists every counter in export order.
var CounterDefs = []CounterDef{
	{ID: redisauth.MetricCredsLoaded, Name: "redisauth_creds_loaded_total", Help: "Opens that found a persisted credential bundle."},
	{ID: redisauth.MetricCredsInitialized, Name: "redisauth_creds_initialized_total", Help: "Opens that generated a fresh credential bundle."},
	{ID: redisauth.MetricCredsSaved, Name: "redisauth_creds_saved_total", Help: "Successful credential saves."},
	{ID: redisauth.MetricRecordsRequested, Name: "redisauth_records_requested_total", Help: "Identifiers requested through bulk reads."},
	{ID: redisauth.MetricRecordsFound, Name: "redisauth_records_found_total", Help: "Requested identifiers that resolved to a stored record."},
	{ID: redisauth.MetricRecordsWritten, Name: "redisauth_records_written_total", Help: "Records written through batched writes."},
	{ID: redisauth.MetricRecordsDeleted, Name: "redisauth_records_deleted_total", Help: "Records deleted through batched writes."},
}

// HistogramDefs lists every histogram in export order.
var HistogramDefs = []HistogramDef{
	{ID: redisauth.MetricReadLatency, Name: "redisauth_read_latency_seconds", Help: "Bulk-read latency histogram."},
}

// HistogramBounds are the upper bucket bounds in seconds, Prometheus form.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix mirrors [HistogramBounds] with characters legal in
// instrument names.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket count. Snapshots from disabled histograms come through empty.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to the cumulative form both
// exposition formats expect. The last element is the total sample count.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
