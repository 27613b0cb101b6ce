package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	m := Init(true)
	require.NotNil(t, m)

	metrics, ok := m.(*Metrics)
	require.True(t, ok, "Init(true) should return *Metrics")
	assert.NotNil(t, metrics.VerificationsTotal)
	assert.NotNil(t, metrics.RotationsTotal)
	assert.NotNil(t, metrics.HashDuration)
	assert.NotNil(t, metrics.HTTPRequestsTotal)

	// Second call must not re-register collectors
	assert.Same(t, metrics, Init(true))
}

func TestInitNoop(t *testing.T) {
	m := Init(false)
	require.NotNil(t, m)

	_, ok := m.(*NoopMetrics)
	assert.True(t, ok, "Init(false) should return *NoopMetrics")

	assert.NotPanics(t, func() {
		m.RecordVerification(ResultAuthenticated, time.Millisecond)
		m.RecordRotation(ResultRotated, time.Millisecond)
		m.RecordHash("bcrypt", time.Millisecond)
	})
}

func TestRecordVerification(t *testing.T) {
	m := Init(true).(*Metrics)

	before := testutil.ToFloat64(m.VerificationsTotal.WithLabelValues(ResultWrongPassword))
	m.RecordVerification(ResultWrongPassword, 20*time.Millisecond)
	after := testutil.ToFloat64(m.VerificationsTotal.WithLabelValues(ResultWrongPassword))

	assert.InDelta(t, 1, after-before, 0.0001)
}

func TestRecordRotation(t *testing.T) {
	m := Init(true).(*Metrics)

	before := testutil.ToFloat64(m.RotationsTotal.WithLabelValues(ResultRotated))
	m.RecordRotation(ResultRotated, 20*time.Millisecond)
	after := testutil.ToFloat64(m.RotationsTotal.WithLabelValues(ResultRotated))

	assert.InDelta(t, 1, after-before, 0.0001)
}

func TestRecordHash(t *testing.T) {
	m := Init(true).(*Metrics)

	m.RecordHash("bcrypt", 30*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(m.HashDuration), 1)
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := Init(true).(*Metrics)

	r := gin.New()
	r.Use(HTTPMetricsMiddleware(m))
	r.POST("/api/login", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wrong Password"})
	})

	before := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/login", "400"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	r.ServeHTTP(w, req)

	after := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/login", "400"))
	assert.InDelta(t, 1, after-before, 0.0001)
	assert.InDelta(t, 0, testutil.ToFloat64(m.HTTPRequestsInFlight), 0.0001)
}

func TestHTTPMetricsMiddleware_Noop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(HTTPMetricsMiddleware(NewNoopMetrics()))
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "unknown", normalizePath(""))
	assert.Equal(t, "/api/login", normalizePath("/api/login"))
}
