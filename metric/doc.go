// Package metric provides Prometheus-based metrics for the gate
// normalization engine.
//
// A Registry owns a private prometheus.Registry with the core metrics and Go
// runtime collectors pre-registered. Core metrics cover the batch path (rows
// processed and excluded, gate tokens produced), resolution quality
// (resolved vs unresolved markers), and the interactive path (validation
// requests, conflicts, latency). Callers may register additional metrics
// through the Registrar interface.
//
// The Handler method exposes the registry in Prometheus scrape format; the
// HTTP gateway mounts it at /metrics.
package metric
