package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testToken = "metrics-token-123"

func newMetricsRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsAuthMiddleware(token))
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})
	return r
}

func TestMetricsAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "no token configured allows access",
			token:      "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid bearer token",
			token:      testToken,
			header:     "Bearer " + testToken,
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing header",
			token:       testToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Bearer token required",
		},
		{
			name:        "basic auth scheme",
			token:       testToken,
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Bearer token required",
		},
		{
			name:        "wrong token",
			token:       testToken,
			header:      "Bearer wrong-token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMetricsRouter(tt.token)

			w := httptest.NewRecorder()
			req, _ := http.NewRequestWithContext(
				context.Background(),
				http.MethodGet,
				"/metrics",
				nil,
			)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "metrics", w.Body.String())
				return
			}
			assert.Contains(t, w.Body.String(), tt.wantMessage)
			assert.Equal(t, `Bearer realm="Metrics"`, w.Header().Get("WWW-Authenticate"))
		})
	}
}
