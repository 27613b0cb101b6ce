package metrics

import (
	"strconv"
	"time"

	"github.com/go-authgate/loginapi/internal/core"

	"github.com/gin-gonic/gin"
)

// HTTPMetricsMiddleware creates a Gin middleware that records HTTP metrics
func HTTPMetricsMiddleware(m core.Recorder) gin.HandlerFunc {
	metrics, ok := m.(*Metrics)
	if !ok {
		// NoopMetrics or unknown implementation
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		// Skip metrics endpoint to avoid self-recording
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		path := normalizePath(c.FullPath()) // Use route pattern, not actual path
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}

// normalizePath returns the route pattern, or "unknown" for unmatched routes
func normalizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}

// RecordVerification records the outcome of a credential verification
func (m *Metrics) RecordVerification(result string, duration time.Duration) {
	m.VerificationsTotal.WithLabelValues(result).Inc()
	m.VerificationDuration.Observe(duration.Seconds())
}

// RecordRotation records the outcome of a password rotation
func (m *Metrics) RecordRotation(result string, duration time.Duration) {
	m.RotationsTotal.WithLabelValues(result).Inc()
	m.RotationDuration.Observe(duration.Seconds())
}

// RecordHash records how long one hash computation took
func (m *Metrics) RecordHash(algorithm string, duration time.Duration) {
	m.HashDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}
