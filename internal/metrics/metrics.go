// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FallbackReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "donation",
		Subsystem: "store",
		Name:      "fallback_reads_total",
		Help:      "Reads served from the sample store, by entity and reason (error or empty).",
	}, []string{"entity", "reason"})

	FallbackWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "donation",
		Subsystem: "store",
		Name:      "fallback_writes_total",
		Help:      "Writes applied only to the sample store because the primary store failed.",
	}, []string{"entity", "op"})

	SweepRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "donation",
		Subsystem: "maintenance",
		Name:      "sweep_rows_total",
		Help:      "Program rows changed by the maintenance sweep, by step.",
	}, []string{"step"})

	SweepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "donation",
		Subsystem: "maintenance",
		Name:      "sweep_failures_total",
		Help:      "Failed maintenance sweep steps, by step.",
	}, []string{"step"})

	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "donation",
		Subsystem: "maintenance",
		Name:      "job_runs_total",
		Help:      "Scheduled job runs by job and result.",
	}, []string{"job", "result"})

	LogSinkFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "donation",
		Subsystem: "logging",
		Name:      "sink_failures_total",
		Help:      "Log records or batches a secondary sink failed to accept, by sink.",
	}, []string{"sink"})
)

// Reasons for a fallback read.
const (
	ReasonError = "error"
	ReasonEmpty = "empty"
)
