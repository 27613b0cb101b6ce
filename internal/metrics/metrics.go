package metrics

import (
	"sync"

	"github.com/go-authgate/loginapi/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for credential operations
const (
	ResultAuthenticated   = "authenticated"
	ResultWrongPassword   = "wrong_password"
	ResultUserNotFound    = "user_not_found"
	ResultRotated         = "rotated"
	ResultPasswordTooLong = "password_too_long"
	ResultError           = "error"
)

// Ensure Metrics implements Recorder interface at compile time
var _ core.Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Credential Metrics
	VerificationsTotal   *prometheus.CounterVec
	VerificationDuration prometheus.Histogram
	RotationsTotal       *prometheus.CounterVec
	RotationDuration     prometheus.Histogram
	HashDuration         *prometheus.HistogramVec

	// HTTP Request Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag
// If enabled=true, returns Prometheus-based Metrics
// If enabled=false, returns NoopMetrics (zero overhead)
// Uses sync.Once to ensure Prometheus metrics are only registered once
func Init(enabled bool) core.Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// hashBuckets cover cheap test costs up to expensive production costs
var hashBuckets = []float64{0.001, 0.005, 0.010, 0.025, 0.050, 0.100, 0.250, 0.500, 1.0, 2.5}

// initMetrics creates and registers all Prometheus metrics
func initMetrics() *Metrics {
	return &Metrics{
		VerificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credential_verifications_total",
				Help: "Total number of credential verifications",
			},
			[]string{"result"}, // authenticated, wrong_password, user_not_found, error
		),
		VerificationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "credential_verification_duration_seconds",
				Help:    "Time taken to verify a credential",
				Buckets: hashBuckets,
			},
		),
		RotationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credential_rotations_total",
				Help: "Total number of password rotations",
			},
			[]string{"result"}, // rotated, user_not_found, password_too_long, error
		),
		RotationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "credential_rotation_duration_seconds",
				Help:    "Time taken to rotate a password",
				Buckets: hashBuckets,
			},
		),
		HashDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "password_hash_duration_seconds",
				Help:    "Time taken to compute a password hash",
				Buckets: hashBuckets,
			},
			[]string{"algorithm"}, // bcrypt, argon2id
		),

		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: hashBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
		),
	}
}
