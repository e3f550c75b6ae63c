// Package prometheus renders store metrics in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts a [redisauth.Store] and exposes an
// [http.Handler] that serves all counters and histograms. Counter names are
// prefixed redisauth_*_total; the single histogram is
// redisauth_read_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the
//     Handler where they want it.
//   - Mutate store state.
package prometheus
