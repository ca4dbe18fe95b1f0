package ports

// MetricsRecorder receives the counters the services emit. The Prometheus
// implementation lives in internal/api/metrics.
type MetricsRecorder interface {
	// SessionCheck records one bootstrap: "public", "no_token",
	// "authenticated" or "rejected".
	SessionCheck(result string)
	ValidationRejected(form string)
	// Submission records a post that reached the network, outcome is
	// "succeeded" or "failed".
	Submission(form, outcome string)
	// GuardDecision records "acquired", "duplicate" or "error".
	GuardDecision(result string)
}
