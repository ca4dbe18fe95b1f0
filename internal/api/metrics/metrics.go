// Package metrics defines and registers all custom Prometheus metrics for the
// timesheet dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are registered with the default Prometheus registry on package
// init through promauto; /metrics exposes them next to the HTTP metrics of the
// echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timesheet"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls made to the external API.
// Labels:
//   - operation: e.g. "token_check", "list_time_entries", "create_employee"
//   - outcome: "ok", "http_error" or "transport_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the external API.",
	},
	[]string{"operation", "outcome"},
)

// UpstreamRequestDuration measures the round trip of a single external API call.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of external API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionChecksTotal counts page-load session bootstraps.
// Label:
//   - result: "public", "no_token", "authenticated", "rejected"
var SessionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_checks_total",
		Help:      "Total number of session bootstrap checks, by result.",
	},
	[]string{"result"},
)

// ── Form metrics ──────────────────────────────────────────────────────────────

// ValidationRejectionsTotal counts submissions stopped before the network.
// Label:
//   - form: "create_time_entry", "update_time_entry", "create_employee"
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of form submissions rejected by client-side validation.",
	},
	[]string{"form"},
)

// SubmissionsTotal counts submissions that reached the network.
// Labels:
//   - form: see ValidationRejectionsTotal
//   - outcome: "succeeded" or "failed"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of form submissions sent to the external API, by outcome.",
	},
	[]string{"form", "outcome"},
)

// SubmissionGuardTotal counts in-flight guard decisions.
// Label:
//   - result: "acquired", "duplicate" or "error"
var SubmissionGuardTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_guard_total",
		Help:      "Total number of in-flight submission guard checks, by result.",
	},
	[]string{"result"},
)

// ── Recorder ──────────────────────────────────────────────────────────────────

// Recorder feeds service outcomes into the collectors above.
type Recorder struct{}

func (Recorder) SessionCheck(result string) {
	SessionChecksTotal.WithLabelValues(result).Inc()
}

func (Recorder) ValidationRejected(form string) {
	ValidationRejectionsTotal.WithLabelValues(form).Inc()
}

func (Recorder) Submission(form, outcome string) {
	SubmissionsTotal.WithLabelValues(form, outcome).Inc()
}

func (Recorder) GuardDecision(result string) {
	SubmissionGuardTotal.WithLabelValues(result).Inc()
}
