package core

import "time"

// Recorder defines the interface for recording application metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Credential operations; result is one of the metrics.Result* labels
	RecordVerification(result string, duration time.Duration)
	RecordRotation(result string, duration time.Duration)

	// Password hashing
	RecordHash(algorithm string, duration time.Duration)
}
