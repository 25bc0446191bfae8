// Package metrics defines and registers all custom Prometheus metrics for the
// HR records API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at package init; the
// /metrics endpoint exposes them alongside the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// RecordMutationsTotal counts successful record mutations.
// Labels:
//   - entity: "employee" or "contract"
//   - op: "create", "update", or "delete"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful record mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ExportsTotal counts generated export artifacts.
// Labels:
//   - format: "pdf" or "xlsx"
//   - dataset: "employees" or "contracts"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of export artifacts generated, by format and dataset.",
	},
	[]string{"format", "dataset"},
)

// LoginAttemptsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ReportBuildDuration measures how long a full KPI report build takes,
// including the sequential per-employee contract fetches.
var ReportBuildDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_build_duration_seconds",
		Help:      "Duration of KPI report builds, from first fetch to aggregation.",
		Buckets:   prometheus.DefBuckets,
	},
)
